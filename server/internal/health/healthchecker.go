// Package health aggregates component probes into one service status.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// HealthChecker is implemented by component-level checkers.
type HealthChecker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// HealthPinger is implemented by stores that can answer a direct liveness
// probe; nil means healthy.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}

// ServiceHealthChecker is healthy only while every dependency is.
type ServiceHealthChecker struct {
	healthy atomic.Bool
	deps    []HealthChecker
	log     zerolog.Logger
}

func NewServiceHealthChecker(log zerolog.Logger, deps ...HealthChecker) *ServiceHealthChecker {
	return &ServiceHealthChecker{deps: deps, log: log}
}

// IsHealthy returns cached service health.
func (h *ServiceHealthChecker) IsHealthy() bool { return h.healthy.Load() }

// Components reports the cached state of each dependency by name.
func (h *ServiceHealthChecker) Components() map[string]bool {
	out := make(map[string]bool, len(h.deps))
	for _, c := range h.deps {
		out[c.Name()] = c.IsHealthy()
	}
	return out
}

// Start starts every dependency and re-evaluates the service flag on each tick.
func (h *ServiceHealthChecker) Start(ctx context.Context, interval time.Duration) {
	for _, c := range h.deps {
		go c.Start(ctx, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.eval()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.eval()
		}
	}
}

func (h *ServiceHealthChecker) eval() {
	all := true
	for _, c := range h.deps {
		if !c.IsHealthy() {
			all = false
			break
		}
	}
	if prev := h.healthy.Swap(all); prev != all {
		if all {
			h.log.Info().Msg("service health: UP")
		} else {
			h.log.Error().Stack().Msg("service health: DOWN")
		}
	}
}
