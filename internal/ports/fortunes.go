// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrValidation, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

// FortuneRepository is the narrow storage interface for fortunes.
// It is the only way the rest of the service reaches stored records.
type FortuneRepository interface {
	// Create persists a validated fortune and fills in its ID and timestamps.
	Create(ctx context.Context, f *domain.Fortune) error

	// Random returns one stored fortune chosen uniformly at random.
	// Returns domain.ErrNotFound when no fortunes are stored.
	Random(ctx context.Context) (*domain.Fortune, error)

	// Count returns the number of stored fortunes.
	Count(ctx context.Context) (int64, error)
}

// FortuneAPI is the client-side view of the fortune HTTP API.
// The UI component depends on it instead of on an HTTP client.
type FortuneAPI interface {
	// RandomFortune calls GET /api/fortune.
	RandomFortune(ctx context.Context) (*domain.Fortune, error)

	// CreateFortune calls POST /api/fortune and returns the echoed fortune.
	CreateFortune(ctx context.Context, text string) (*domain.Fortune, error)
}
