package api

import (
	"context"

	"github.com/audiolux/audiolux/client/internal/types"
)

// GetSettings fetches GET /api/settings and returns the body untouched.
func GetSettings(ctx context.Context, httpClient HTTPClient, baseURL string) (types.Settings, error) {
	return getData(ctx, httpClient, baseURL, "settings", "get settings")
}

// SetSettings replaces the device settings via PUT /api/settings. Like
// SetPattern it hands back the full response envelope.
func SetSettings(ctx context.Context, httpClient HTTPClient, baseURL string, settings any) (*types.Response, error) {
	return putData(ctx, httpClient, Endpoint(baseURL, "settings"), "set settings", settings)
}
