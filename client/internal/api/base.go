package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	clienterrors "github.com/audiolux/audiolux/client/internal/errors"
	"github.com/audiolux/audiolux/client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxErrorBody bounds how much of a failed response is kept on the error.
const maxErrorBody = 4 << 10

// Endpoint joins the base URL, the fixed /api/ prefix and a path segment.
func Endpoint(baseURL, path string) string {
	return baseURL + "/api/" + path
}

// getData issues GET {baseURL}/api/{path} and returns the 2xx body unchanged.
// A body that is not JSON is still returned as-is; an empty body yields nil.
func getData(ctx context.Context, httpClient HTTPClient, baseURL, path, op string) (json.RawMessage, error) {
	url := Endpoint(baseURL, path)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, clienterrors.NewBuildError(op, http.MethodGet, url, err)
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError(op, httpReq, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, clienterrors.NewHTTPError(op, httpReq, resp.StatusCode, readErrorBody(resp.Body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clienterrors.NewNetworkError(op, httpReq, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// putData issues PUT {url} with body encoded as JSON and returns the full
// response envelope.
func putData(ctx context.Context, httpClient HTTPClient, url, op string, body any) (*types.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, clienterrors.NewBuildError(op, http.MethodPut, url, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return nil, clienterrors.NewBuildError(op, http.MethodPut, url, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError(op, httpReq, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, clienterrors.NewHTTPError(op, httpReq, resp.StatusCode, readErrorBody(resp.Body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clienterrors.NewNetworkError(op, httpReq, err)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return &types.Response{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Headers:    resp.Header,
		URL:        finalURL,
		Data:       data,
	}, nil
}

func isSuccess(code int) bool { return code >= 200 && code < 300 }

func readErrorBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return string(b)
}
