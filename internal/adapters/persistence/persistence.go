// Package persistence selects the fortune store configured for the service.
package persistence

import (
	"context"
	"fmt"
	"io"

	"github.com/jsamuelsen/fortune-service/internal/adapters/persistence/postgres"
	"github.com/jsamuelsen/fortune-service/internal/adapters/persistence/sqlite"
	"github.com/jsamuelsen/fortune-service/internal/platform/config"
	"github.com/jsamuelsen/fortune-service/internal/ports"
)

// Store is a fortune repository that also reports its health and owns a
// connection pool.
type Store interface {
	ports.FortuneRepository
	ports.HealthChecker
	io.Closer
}

// Open connects to the store named by cfg.Driver.
func Open(ctx context.Context, cfg *config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		return sqlite.Open(ctx, sqlite.Config{
			DSN:             cfg.DSN,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
	case config.StoreDriverPostgres:
		return postgres.Open(ctx, postgres.Config{
			DSN:             cfg.DSN,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
