package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/audiolux/audiolux/server/internal/config"
	storepkg "github.com/audiolux/audiolux/server/internal/store"
	"github.com/audiolux/audiolux/server/internal/store/memory"
	"github.com/audiolux/audiolux/server/internal/store/sqlite"
)

// NewStore returns the store.Store selected by cfg.StoreDriver.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory, "":
		log.Debug().Str("driver", config.DriverMemory).Msg("store opened")
		return memory.New(), nil
	case config.DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", cfg.StoreDriver).Str("path", cfg.SQLitePath).Msg("store opened")
		return st, nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}
}
