// Package postgres stores fortunes in PostgreSQL through GORM. The schema is
// owned by versioned SQL migrations applied with golang-migrate.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // registers postgres:// for migrate
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Config holds connection settings for the PostgreSQL store.
// DSN must be a URL (postgres://...) so migrate can use it too.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// fortuneRecord is the GORM model for the fortunes table.
type fortuneRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Text      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (fortuneRecord) TableName() string {
	return "fortunes"
}

func (r *fortuneRecord) toDomain() *domain.Fortune {
	return &domain.Fortune{
		ID:        r.ID,
		Text:      r.Text,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// now matches TIMESTAMPTZ precision so a created record echoes the same
// timestamps a later read returns.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Store implements ports.FortuneRepository and ports.HealthChecker.
type Store struct {
	db *gorm.DB
}

// Open runs pending migrations and connects.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if err := Migrate(cfg.DSN); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:  logger.Discard,
		NowFunc: now,
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting connection pool: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return &Store{db: db}, nil
}

// Migrate applies every pending up migration embedded in the binary.
func Migrate(dsn string) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}

	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}

// Create inserts the fortune and copies back the generated ID and timestamps.
func (s *Store) Create(ctx context.Context, f *domain.Fortune) error {
	if err := f.Validate(); err != nil {
		return err
	}

	rec := fortuneRecord{Text: f.Text}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("inserting fortune: %w", err)
	}

	*f = *rec.toDomain()

	return nil
}

// Random returns a uniformly chosen fortune or domain.ErrNotFound.
func (s *Store) Random(ctx context.Context) (*domain.Fortune, error) {
	var rec fortuneRecord

	err := s.db.WithContext(ctx).Order("RANDOM()").Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("selecting random fortune: %w", err)
	}

	return rec.toDomain(), nil
}

// Count returns the number of stored fortunes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&fortuneRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting fortunes: %w", err)
	}

	return n, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "postgres"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
