package client

import (
	"context"
	"net/http"

	"github.com/audiolux/audiolux/client/internal/api"
)

// BaseURL is the address of the local AudioLux web API.
const BaseURL = "http://localhost:8000"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues requests against the AudioLux web API. It keeps no state
// between calls and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client bound to BaseURL. No timeout is configured on the
// underlying http.Client; bound calls through their context if needed.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: BaseURL,
		http:    &http.Client{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Read operations: resolve to the decoded body
// --------------------------------------------------------------------

// GetSettings issues GET /api/settings.
func (c *Client) GetSettings(ctx context.Context) (Settings, error) {
	s, err := api.GetSettings(ctx, c.http, c.baseURL)
	observe("get_settings", err)
	return s, err
}

// GetPatternList issues GET /api/patterns.
func (c *Client) GetPatternList(ctx context.Context) (PatternList, error) {
	l, err := api.GetPatternList(ctx, c.http, c.baseURL)
	observe("get_pattern_list", err)
	return l, err
}

// GetPattern issues GET /api/pattern. The backend picks the pattern.
func (c *Client) GetPattern(ctx context.Context) (Pattern, error) {
	p, err := api.GetPattern(ctx, c.http, c.baseURL)
	observe("get_pattern", err)
	return p, err
}

// GetHistory issues GET /api/history. Reading drains the backend's log.
func (c *Client) GetHistory(ctx context.Context) (History, error) {
	h, err := api.GetHistory(ctx, c.http, c.baseURL)
	observe("get_history", err)
	return h, err
}

// Health issues GET /api/health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	h, err := api.Health(ctx, c.http, c.baseURL)
	observe("health", err)
	return h, err
}

// --------------------------------------------------------------------
// Write operations: resolve to the full response envelope
// --------------------------------------------------------------------

// SetPattern issues PUT /api/pattern/ with body {"pattern": pattern}.
// Unlike the reads it returns the whole Response, not just its body.
func (c *Client) SetPattern(ctx context.Context, pattern any) (*Response, error) {
	r, err := api.SetPattern(ctx, c.http, c.baseURL, pattern)
	observe("set_pattern", err)
	return r, err
}

// SetSettings issues PUT /api/settings with settings as the body.
func (c *Client) SetSettings(ctx context.Context, settings any) (*Response, error) {
	r, err := api.SetSettings(ctx, c.http, c.baseURL, settings)
	observe("set_settings", err)
	return r, err
}
