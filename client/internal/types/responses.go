package types

import (
	"encoding/json"
	"net/http"
)

// ------------------------------
// Response Types
// ------------------------------

// Response is the full envelope of a write call: status line, headers, final
// URL and the raw body. Write operations return it instead of the body.
type Response struct {
	Status     int         `json:"status"`
	StatusText string      `json:"statusText"`
	Headers    http.Header `json:"headers"`
	URL        string      `json:"url"`
	Data       []byte      `json:"-"`
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Data, v)
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
