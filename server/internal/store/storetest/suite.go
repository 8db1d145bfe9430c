package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/audiolux/audiolux/server/internal/model"
	"github.com/audiolux/audiolux/server/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// makeStore must return a fresh store seeded with the device defaults.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("defaults", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		got, err := s.Settings().Get(ctx)
		if err != nil {
			t.Fatalf("GetSettings: %v", err)
		}
		if got.String() != model.DefaultSettings().String() {
			t.Fatalf("default settings: got %s", got)
		}
		p, err := s.Patterns().Current(ctx)
		if err != nil || p != model.DefaultPattern {
			t.Fatalf("default pattern: got=%q err=%v", p, err)
		}
		h, err := s.History().Drain(ctx)
		if err != nil || h == nil || len(h) != 0 {
			t.Fatalf("fresh history should be empty, non-nil: %v %v", h, err)
		}
	})

	t.Run("settings", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		want := model.NewSettings(1, 2, 3, 4, 5)
		if err := s.Settings().Put(ctx, want); err != nil {
			t.Fatalf("PutSettings: %v", err)
		}
		*want.Noise = 99
		got, err := s.Settings().Get(ctx)
		if err != nil || got.String() != "noise=1 compression=2 loFreqHue=3 hiFreqHue=4 ledCount=5" {
			t.Fatalf("GetSettings: got=%s err=%v", got, err)
		}

		err = s.Settings().Put(ctx, model.Settings{Noise: want.Noise})
		if !errors.Is(err, model.ErrValidation) {
			t.Fatalf("partial settings should fail validation, got %v", err)
		}
	})

	t.Run("pattern", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		if err := s.Patterns().SetCurrent(ctx, model.PatternVBar); err != nil {
			t.Fatalf("SetCurrent: %v", err)
		}
		if p, err := s.Patterns().Current(ctx); err != nil || p != model.PatternVBar {
			t.Fatalf("Current: got=%q err=%v", p, err)
		}
		if err := s.Patterns().SetCurrent(ctx, "disco"); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("unknown pattern should fail validation, got %v", err)
		}
		if p, _ := s.Patterns().Current(ctx); p != model.PatternVBar {
			t.Fatalf("rejected write changed pattern to %q", p)
		}
	})

	t.Run("history drains in order", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if err := s.History().Append(ctx, fmt.Sprintf("line %d\n", i)); err != nil {
				t.Fatalf("Append: %v", err)
			}
		}
		h, err := s.History().Drain(ctx)
		if err != nil || len(h) != 3 || h[0] != "line 0\n" || h[2] != "line 2\n" {
			t.Fatalf("Drain: %v %v", h, err)
		}
		h, err = s.History().Drain(ctx)
		if err != nil || len(h) != 0 {
			t.Fatalf("second Drain should be empty: %v %v", h, err)
		}
	})

	t.Run("concurrent appends", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if err := s.History().Append(ctx, fmt.Sprintf("line %d\n", i)); err != nil {
					t.Errorf("Append: %v", err)
				}
			}(i)
		}
		wg.Wait()
		h, err := s.History().Drain(ctx)
		if err != nil || len(h) != 20 {
			t.Fatalf("Drain after concurrent appends: n=%d err=%v", len(h), err)
		}
	})
}
