package health

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeChecker struct {
	name    string
	healthy atomic.Bool
	started atomic.Bool
}

func (f *fakeChecker) Name() string                               { return f.name }
func (f *fakeChecker) IsHealthy() bool                            { return f.healthy.Load() }
func (f *fakeChecker) Start(ctx context.Context, _ time.Duration) { f.started.Store(true) }

func TestServiceHealthChecker_Transitions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := &fakeChecker{name: "store"}
	b := &fakeChecker{name: "other"}
	a.healthy.Store(true)
	b.healthy.Store(true)

	svc := NewServiceHealthChecker(zerolog.Nop(), a, b)
	go svc.Start(ctx, 10*time.Millisecond)

	waitTrue(t, func() bool { return svc.IsHealthy() })
	waitTrue(t, func() bool { return a.started.Load() && b.started.Load() })

	b.healthy.Store(false)
	waitTrue(t, func() bool { return !svc.IsHealthy() })
	if c := svc.Components(); !c["store"] || c["other"] {
		t.Fatalf("unexpected component view %v", c)
	}

	b.healthy.Store(true)
	waitTrue(t, func() bool { return svc.IsHealthy() })
}

func TestServiceHealthChecker_NoDepsIsHealthy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc := NewServiceHealthChecker(zerolog.Nop())
	go svc.Start(ctx, 10*time.Millisecond)
	waitTrue(t, svc.IsHealthy)
}

func waitTrue(t *testing.T, pred func() bool) {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if pred() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met before timeout")
}
