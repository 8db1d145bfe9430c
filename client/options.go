package client

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithBaseURL points the client at a different backend, e.g. a test server.
// A trailing slash is dropped so paths join cleanly.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base url %q", raw)
		}
		c.baseURL = strings.TrimRight(raw, "/")
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The client is used as
// given; its Timeout, if any, is the caller's choice.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it dumps
// request and response bodies into the logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, ok := c.http.Transport.(*debugTransport); ok {
				return nil
			}
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
