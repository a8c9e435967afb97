package postgres

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

// openTestStore connects to FORTUNE_TEST_POSTGRES_DSN, skipping when unset.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("FORTUNE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("FORTUNE_TEST_POSTGRES_DSN not set")
	}

	store, err := Open(context.Background(), Config{DSN: dsn, MaxOpenConns: 4})
	require.NoError(t, err)

	require.NoError(t, store.db.Exec("TRUNCATE fortunes RESTART IDENTITY").Error)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestMigrationsEmbedded(t *testing.T) {
	up, err := fs.Glob(migrations, "migrations/*.up.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, up)

	down, err := fs.Glob(migrations, "migrations/*.down.sql")
	require.NoError(t, err)
	assert.Len(t, down, len(up))
}

func TestFortuneRecord_ToDomain(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := fortuneRecord{ID: 9, Text: "Hi", CreatedAt: now, UpdatedAt: now}

	assert.Equal(t, "fortunes", rec.TableName())
	assert.Equal(t, &domain.Fortune{ID: 9, Text: "Hi", CreatedAt: now, UpdatedAt: now}, rec.toDomain())
}

func TestStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Random(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, store.Create(ctx, &domain.Fortune{Text: " "}), domain.ErrValidation)

	f := &domain.Fortune{Text: "Hi"}
	require.NoError(t, store.Create(ctx, f))
	assert.Positive(t, f.ID)
	assert.False(t, f.CreatedAt.IsZero())

	got, err := store.Random(ctx)
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
	assert.Equal(t, "Hi", got.Text)
	assert.True(t, f.CreatedAt.Equal(got.CreatedAt), "created %v, read %v", f.CreatedAt, got.CreatedAt)
	assert.True(t, f.UpdatedAt.Equal(got.UpdatedAt), "updated %v, read %v", f.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.Equal(t, "postgres", store.Name())
	assert.NoError(t, store.Check(ctx))
}

func TestNow_MatchesColumnPrecision(t *testing.T) {
	got := now()

	assert.Equal(t, time.UTC, got.Location())
	assert.Zero(t, got.Nanosecond()%int(time.Microsecond))
}
