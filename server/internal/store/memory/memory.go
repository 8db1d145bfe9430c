// Package memory is the default store driver. State lives for the lifetime
// of the process.
package memory

import (
	"context"
	"sync"

	"github.com/audiolux/audiolux/server/internal/model"
	"github.com/audiolux/audiolux/server/internal/store"
)

// Store keeps settings, current pattern and history behind one mutex.
type Store struct {
	mu       sync.Mutex
	settings model.Settings
	pattern  model.Pattern
	history  []string
}

var _ store.Store = (*Store)(nil)

// New returns a store seeded with the device defaults.
func New() *Store {
	return &Store{
		settings: model.DefaultSettings(),
		pattern:  model.DefaultPattern,
	}
}

func (s *Store) Settings() store.Settings { return settingsRepo{s} }
func (s *Store) Patterns() store.Patterns { return patternsRepo{s} }
func (s *Store) History() store.History   { return historyRepo{s} }

// Close is a no-op.
func (s *Store) Close() error { return nil }

// HealthPing always succeeds for the in-process store.
func (s *Store) HealthPing(ctx context.Context) error { return ctx.Err() }

type settingsRepo struct{ s *Store }

func (r settingsRepo) Get(ctx context.Context) (model.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return copySettings(r.s.settings), nil
}

func (r settingsRepo) Put(ctx context.Context, v model.Settings) error {
	if err := v.Validate(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.settings = copySettings(v)
	return nil
}

// copySettings detaches the pointer fields so callers cannot mutate stored state.
func copySettings(v model.Settings) model.Settings {
	return model.NewSettings(*v.Noise, *v.Compression, *v.LoFreqHue, *v.HiFreqHue, *v.LedCount)
}

type patternsRepo struct{ s *Store }

func (r patternsRepo) Current(ctx context.Context) (model.Pattern, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.pattern, nil
}

func (r patternsRepo) SetCurrent(ctx context.Context, p model.Pattern) error {
	if !p.Valid() {
		return model.ErrValidation
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.pattern = p
	return nil
}

type historyRepo struct{ s *Store }

func (r historyRepo) Append(ctx context.Context, line string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.history = append(r.s.history, line)
	return nil
}

func (r historyRepo) Drain(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.s.history
	r.s.history = nil
	if out == nil {
		out = []string{}
	}
	return out, nil
}
