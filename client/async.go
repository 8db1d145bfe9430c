package client

import (
	"context"

	"github.com/audiolux/audiolux/client/internal/job"
)

// Future is the pending result of an *Async call. Await blocks until the
// request finishes; Done exposes readiness for select loops.
type Future[T any] = job.Future[T]

// The *Async variants return immediately and run the request on its own
// goroutine. Futures are independent of one another: each settles only on
// the outcome of its own request. Requests are not canceled once issued.

// GetSettingsAsync is the non-blocking form of GetSettings.
func (c *Client) GetSettingsAsync(ctx context.Context) *Future[Settings] {
	return job.Go(ctx, c.GetSettings)
}

// GetPatternListAsync is the non-blocking form of GetPatternList.
func (c *Client) GetPatternListAsync(ctx context.Context) *Future[PatternList] {
	return job.Go(ctx, c.GetPatternList)
}

// GetPatternAsync is the non-blocking form of GetPattern.
func (c *Client) GetPatternAsync(ctx context.Context) *Future[Pattern] {
	return job.Go(ctx, c.GetPattern)
}

// SetPatternAsync is the non-blocking form of SetPattern.
func (c *Client) SetPatternAsync(ctx context.Context, pattern any) *Future[*Response] {
	return job.Go(ctx, func(ctx context.Context) (*Response, error) {
		return c.SetPattern(ctx, pattern)
	})
}

// SetSettingsAsync is the non-blocking form of SetSettings.
func (c *Client) SetSettingsAsync(ctx context.Context, settings any) *Future[*Response] {
	return job.Go(ctx, func(ctx context.Context) (*Response, error) {
		return c.SetSettings(ctx, settings)
	})
}

// GetHistoryAsync is the non-blocking form of GetHistory.
func (c *Client) GetHistoryAsync(ctx context.Context) *Future[History] {
	return job.Go(ctx, c.GetHistory)
}

// HealthAsync is the non-blocking form of Health.
func (c *Client) HealthAsync(ctx context.Context) *Future[Health] {
	return job.Go(ctx, c.Health)
}
