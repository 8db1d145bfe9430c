// Package validate decodes request bodies and turns every decoding or
// field failure into a validation error.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/audiolux/audiolux/server/internal/model"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 64 << 10

// Validator is implemented by request bodies with field rules.
type Validator interface {
	Validate() error
}

// DecodeJSON reads exactly one JSON document from r into v and runs its
// Validate method. Every failure wraps model.ErrValidation.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v Validator) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", model.ErrValidation, describe(err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: body: extra data after JSON value", model.ErrValidation)
	}
	return v.Validate()
}

func describe(err error) string {
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return "body: field required"
	case errors.As(err, &syn):
		return fmt.Sprintf("body: JSON decode error at offset %d", syn.Offset)
	case errors.As(err, &typ):
		if typ.Field != "" {
			return fmt.Sprintf("%s: value is not a valid %s", typ.Field, typ.Type)
		}
		return fmt.Sprintf("body: value is not a valid %s", typ.Type)
	case errors.As(err, &tooBig):
		return fmt.Sprintf("body: exceeds %d bytes", tooBig.Limit)
	default:
		return "body: " + err.Error()
	}
}

// Message strips the sentinel prefix for display.
func Message(err error) string {
	msg := err.Error()
	prefix := model.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
