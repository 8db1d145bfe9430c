package client

import (
	"context"
	"sync"
)

// Package-level shorthands bound to a default Client at BaseURL.

var defaultClient = sync.OnceValue(func() *Client {
	c, err := New()
	if err != nil {
		// New only fails on a bad option and the default uses none.
		panic(err)
	}
	return c
})

// Default returns the shared Client used by the package-level functions.
func Default() *Client { return defaultClient() }

// GetSettings fetches the settings from BaseURL.
func GetSettings(ctx context.Context) (Settings, error) { return Default().GetSettings(ctx) }

// GetPatternList fetches the pattern list from BaseURL.
func GetPatternList(ctx context.Context) (PatternList, error) {
	return Default().GetPatternList(ctx)
}

// GetPattern fetches the current pattern from BaseURL.
func GetPattern(ctx context.Context) (Pattern, error) { return Default().GetPattern(ctx) }

// SetPattern stores pattern at BaseURL and returns the response envelope.
func SetPattern(ctx context.Context, pattern any) (*Response, error) {
	return Default().SetPattern(ctx, pattern)
}
