package api

import (
	"context"

	"github.com/audiolux/audiolux/client/internal/types"
)

// GetHistory fetches GET /api/history. The backend clears its log on read.
func GetHistory(ctx context.Context, httpClient HTTPClient, baseURL string) (types.History, error) {
	return getData(ctx, httpClient, baseURL, "history", "get history")
}

// Health fetches GET /api/health.
func Health(ctx context.Context, httpClient HTTPClient, baseURL string) (types.Health, error) {
	return getData(ctx, httpClient, baseURL, "health", "health")
}
