package store

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/audiolux/audiolux/server/internal/health"
)

// HealthChecker probes the store on an interval and caches the result.
type HealthChecker struct {
	store        Store
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewHealthChecker creates a checker that starts unhealthy until the first
// successful probe.
func NewHealthChecker(s Store, log zerolog.Logger, probeTimeout time.Duration) *HealthChecker {
	return &HealthChecker{store: s, log: log, probeTimeout: probeTimeout}
}

func (hc *HealthChecker) Name() string { return "store" }

// IsHealthy returns the cached health status (non-blocking).
func (hc *HealthChecker) IsHealthy() bool { return hc.healthy.Load() == 1 }

// Start probes immediately and then every interval until ctx is done.
func (hc *HealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	hc.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hc.check(ctx)
		}
	}
}

func (hc *HealthChecker) check(ctx context.Context) {
	to := hc.probeTimeout
	if to <= 0 {
		to = 2 * time.Second
	}
	probeCtx, cancel := context.WithTimeout(ctx, to)
	defer cancel()

	if err := hc.probe(probeCtx); err != nil {
		hc.log.Error().Stack().Str("checker", hc.Name()).Err(err).Msg("store health check failed")
		hc.healthy.Store(0)
		return
	}
	hc.healthy.Store(1)
}

// probe prefers a driver's HealthPing and otherwise falls back to a read.
func (hc *HealthChecker) probe(ctx context.Context) error {
	if p, ok := hc.store.(health.HealthPinger); ok {
		return p.HealthPing(ctx)
	}
	_, err := hc.store.Patterns().Current(ctx)
	return err
}
