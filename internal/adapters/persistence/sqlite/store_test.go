package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

func openMemory(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), Config{DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_RandomEmpty(t *testing.T) {
	store := openMemory(t)

	f, err := store.Random(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, f)
}

func TestStore_CreateThenRandom(t *testing.T) {
	store := openMemory(t)
	fixed := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	f := &domain.Fortune{Text: "Hi"}
	require.NoError(t, store.Create(context.Background(), f))

	assert.Positive(t, f.ID)
	assert.Equal(t, fixed, f.CreatedAt)
	assert.Equal(t, fixed, f.UpdatedAt)

	got, err := store.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestStore_CreateRejectsBlank(t *testing.T) {
	store := openMemory(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		err := store.Create(context.Background(), &domain.Fortune{Text: text})
		require.ErrorIs(t, err, domain.ErrValidation)
	}

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_CreateAssignsUniqueIDs(t *testing.T) {
	store := openMemory(t)

	const total = 20

	var wg sync.WaitGroup

	ids := make(chan int64, total)

	for i := range total {
		wg.Add(1)

		go func() {
			defer wg.Done()

			f := &domain.Fortune{Text: fmt.Sprintf("fortune %d", i)}
			assert.NoError(t, store.Create(context.Background(), f))
			ids <- f.ID
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, total)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(total), n)
}

func TestStore_RandomCoversAllRecords(t *testing.T) {
	store := openMemory(t)

	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		require.NoError(t, store.Create(context.Background(), &domain.Fortune{Text: text}))
	}

	seen := map[string]int{}
	for range 300 {
		f, err := store.Random(context.Background())
		require.NoError(t, err)
		seen[f.Text]++
	}

	for _, text := range texts {
		assert.Positive(t, seen[text], "never drew %q", text)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "fortunes.db")

	store, err := Open(context.Background(), Config{DSN: dsn, MaxOpenConns: 2})
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), &domain.Fortune{Text: "kept"}))
	require.NoError(t, store.Close())

	store, err = Open(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	f, err := store.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "kept", f.Text)
}

func TestStore_HealthCheck(t *testing.T) {
	store := openMemory(t)

	assert.Equal(t, "sqlite", store.Name())
	require.NoError(t, store.Check(context.Background()))

	require.NoError(t, store.Close())
	assert.Error(t, store.Check(context.Background()))
}
