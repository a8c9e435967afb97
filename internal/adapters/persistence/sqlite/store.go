// Package sqlite stores fortunes in an embedded SQLite database using the
// pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS fortunes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	text       TEXT    NOT NULL,
	created_at TEXT    NOT NULL,
	updated_at TEXT    NOT NULL
)`

// Config holds connection settings for the SQLite store.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store implements ports.FortuneRepository and ports.HealthChecker.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open connects to the database and creates the fortunes table if needed.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// every connection to an in-memory database is a separate database
	if isMemory(cfg.DSN) {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.ConnMaxLifetime > 0 && !isMemory(cfg.DSN) {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Create inserts the fortune in a single statement and sets its ID and timestamps.
func (s *Store) Create(ctx context.Context, f *domain.Fortune) error {
	if err := f.Validate(); err != nil {
		return err
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	stamp := now.Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO fortunes (text, created_at, updated_at) VALUES (?, ?, ?)`,
		f.Text, stamp, stamp,
	)
	if err != nil {
		return fmt.Errorf("inserting fortune: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading fortune id: %w", err)
	}

	f.ID = id
	f.CreatedAt = now
	f.UpdatedAt = now

	return nil
}

// Random returns a uniformly chosen fortune or domain.ErrNotFound.
func (s *Store) Random(ctx context.Context) (*domain.Fortune, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, text, created_at, updated_at FROM fortunes ORDER BY RANDOM() LIMIT 1`,
	)

	var (
		f                domain.Fortune
		created, updated string
	)

	err := row.Scan(&f.ID, &f.Text, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("selecting random fortune: %w", err)
	}

	if f.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	if f.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &f, nil
}

// Count returns the number of stored fortunes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fortunes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting fortunes: %w", err)
	}

	return n, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
