package store

import (
	"context"

	"github.com/audiolux/audiolux/server/internal/model"
)

// Store exposes the device state the mock backend serves.
// Implementations live under internal/store/<driver>/ (memory, sqlite).
type Store interface {
	Settings() Settings
	Patterns() Patterns
	History() History
	Close() error
}

type Settings interface {
	Get(ctx context.Context) (model.Settings, error)
	Put(ctx context.Context, s model.Settings) error
}

type Patterns interface {
	Current(ctx context.Context) (model.Pattern, error)
	SetCurrent(ctx context.Context, p model.Pattern) error
}

// History is an append-only log that is emptied when read.
type History interface {
	Append(ctx context.Context, line string) error
	// Drain returns all lines in append order and clears the log.
	Drain(ctx context.Context) ([]string, error)
}
