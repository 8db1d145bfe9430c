package api

import (
	"context"

	"github.com/audiolux/audiolux/client/internal/types"
)

// GetPatternList fetches GET /api/patterns.
func GetPatternList(ctx context.Context, httpClient HTTPClient, baseURL string) (types.PatternList, error) {
	return getData(ctx, httpClient, baseURL, "patterns", "get pattern list")
}

// GetPattern fetches GET /api/pattern. The backend decides which pattern is
// returned; there is no identifier.
func GetPattern(ctx context.Context, httpClient HTTPClient, baseURL string) (types.Pattern, error) {
	return getData(ctx, httpClient, baseURL, "pattern", "get pattern")
}

// SetPattern sends PUT /api/pattern/ with body {"pattern": pattern} and
// returns the full response envelope rather than the decoded body.
func SetPattern(ctx context.Context, httpClient HTTPClient, baseURL string, pattern any) (*types.Response, error) {
	req := types.SetPatternRequest{Pattern: pattern}
	return putData(ctx, httpClient, Endpoint(baseURL, "pattern/"), "set pattern", req)
}
