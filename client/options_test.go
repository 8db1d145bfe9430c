package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// debug logging wraps transport and still reaches the base transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	c, err := New(WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to wrap the base transport")
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestWithBaseURL(t *testing.T) {
	c, err := New(WithBaseURL("http://127.0.0.1:9999/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://127.0.0.1:9999" {
		t.Fatalf("trailing slash not trimmed: %s", c.BaseURL())
	}

	if _, err := New(WithBaseURL("not a url")); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}

func TestWithHTTPClient_Nil(t *testing.T) {
	if _, err := New(WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://localhost:8000" {
		t.Fatalf("unexpected default base url %s", c.BaseURL())
	}
	if c.http.Timeout != 0 {
		t.Fatalf("no timeout should be configured, got %v", c.http.Timeout)
	}
}
