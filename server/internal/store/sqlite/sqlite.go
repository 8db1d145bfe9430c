// Package sqlite is a file-backed store driver; state survives restarts.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/audiolux/audiolux/server/internal/model"
	"github.com/audiolux/audiolux/server/internal/store"
)

// Store implements store.Store on a single SQLite file.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open opens the database at path, applies the schema and seeds the device
// defaults on first use.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	d := model.DefaultSettings()
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (id, noise, compression, lo_freq_hue, hi_freq_hue, led_count) VALUES (1,?,?,?,?,?)`,
		*d.Noise, *d.Compression, *d.LoFreqHue, *d.HiFreqHue, *d.LedCount); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO current_pattern (id, pattern) VALUES (1,?)`, string(model.DefaultPattern)); err != nil {
		return fmt.Errorf("seed pattern: %w", err)
	}
	return nil
}

// DB exposes the underlying connection.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// HealthPing verifies the database answers.
func (s *Store) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Settings() store.Settings { return settingsRepo{s.db} }
func (s *Store) Patterns() store.Patterns { return patternsRepo{s.db} }
func (s *Store) History() store.History   { return historyRepo{s.db} }

type settingsRepo struct{ db *sql.DB }

func (r settingsRepo) Get(ctx context.Context) (model.Settings, error) {
	var noise, compression, lo, hi, leds int
	err := r.db.QueryRowContext(ctx,
		`SELECT noise, compression, lo_freq_hue, hi_freq_hue, led_count FROM settings WHERE id = 1`).
		Scan(&noise, &compression, &lo, &hi, &leds)
	if err == sql.ErrNoRows {
		return model.Settings{}, model.ErrNotFound
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return model.NewSettings(noise, compression, lo, hi, leds), nil
}

func (r settingsRepo) Put(ctx context.Context, v model.Settings) error {
	if err := v.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (id, noise, compression, lo_freq_hue, hi_freq_hue, led_count) VALUES (1,?,?,?,?,?)
		 ON CONFLICT(id) DO UPDATE SET noise=excluded.noise, compression=excluded.compression,
		   lo_freq_hue=excluded.lo_freq_hue, hi_freq_hue=excluded.hi_freq_hue, led_count=excluded.led_count`,
		*v.Noise, *v.Compression, *v.LoFreqHue, *v.HiFreqHue, *v.LedCount)
	if err != nil {
		return fmt.Errorf("put settings: %w", err)
	}
	return nil
}

type patternsRepo struct{ db *sql.DB }

func (r patternsRepo) Current(ctx context.Context) (model.Pattern, error) {
	var p string
	err := r.db.QueryRowContext(ctx, `SELECT pattern FROM current_pattern WHERE id = 1`).Scan(&p)
	if err == sql.ErrNoRows {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get pattern: %w", err)
	}
	return model.Pattern(p), nil
}

func (r patternsRepo) SetCurrent(ctx context.Context, p model.Pattern) error {
	if !p.Valid() {
		return model.ErrValidation
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO current_pattern (id, pattern) VALUES (1,?) ON CONFLICT(id) DO UPDATE SET pattern=excluded.pattern`,
		string(p))
	if err != nil {
		return fmt.Errorf("set pattern: %w", err)
	}
	return nil
}

type historyRepo struct{ db *sql.DB }

func (r historyRepo) Append(ctx context.Context, line string) error {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO history (line) VALUES (?)`, line); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (r historyRepo) Drain(ctx context.Context) ([]string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("drain history: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `SELECT seq, line FROM history ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("drain history: %w", err)
	}
	out := []string{}
	var last int64
	for rows.Next() {
		var line string
		if err := rows.Scan(&last, &line); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("drain history: %w", err)
		}
		out = append(out, line)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("drain history: %w", err)
	}
	_ = rows.Close()

	if len(out) > 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM history WHERE seq <= ?`, last); err != nil {
			return nil, fmt.Errorf("drain history: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("drain history: %w", err)
	}
	return out, nil
}
