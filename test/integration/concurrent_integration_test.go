//go:build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

func newTestStack(t *testing.T) *stack {
	t.Helper()

	s, err := startStack(context.Background())
	require.NoError(t, err)
	t.Cleanup(s.close)

	return s
}

// TestConcurrent_Creates verifies that parallel submissions each get their
// own row and nothing is lost.
func TestConcurrent_Creates(t *testing.T) {
	s := newTestStack(t)

	api, err := s.fortuneClient()
	require.NoError(t, err)

	const numGoroutines = 25

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]string, numGoroutines)
	)

	for i := range numGoroutines {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			text := fmt.Sprintf("fortune #%d", i)

			f, err := api.CreateFortune(context.Background(), text)
			if !assert.NoError(t, err) {
				return
			}

			assert.Equal(t, text, f.Text)

			mu.Lock()
			defer mu.Unlock()
			ids[f.ID] = f.Text
		}(i)
	}

	wg.Wait()

	assert.Len(t, ids, numGoroutines, "every create gets a distinct id")

	count, err := s.store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(numGoroutines), count)
}

// TestConcurrent_ReadsDuringWrites verifies that readers never see a
// partially written fortune while writers are active.
func TestConcurrent_ReadsDuringWrites(t *testing.T) {
	s := newTestStack(t)

	_, err := s.service.Seed(context.Background(), []string{"seed"})
	require.NoError(t, err)

	api, err := s.fortuneClient()
	require.NoError(t, err)

	const (
		writers = 10
		readers = 20
	)

	var (
		wg        sync.WaitGroup
		blankRead atomic.Int32
	)

	for i := range writers {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			_, err := api.CreateFortune(context.Background(), fmt.Sprintf("written %d", i))
			assert.NoError(t, err)
		}(i)
	}

	for range readers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			f, err := api.RandomFortune(context.Background())
			if !assert.NoError(t, err) {
				return
			}

			if f.Text == "" || f.ID == 0 {
				blankRead.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Zero(t, blankRead.Load())
}

// TestConcurrent_BlankSubmissionsPersistNothing verifies that rejected
// submissions racing with valid ones leave no rows behind.
func TestConcurrent_BlankSubmissionsPersistNothing(t *testing.T) {
	s := newTestStack(t)

	api, err := s.fortuneClient()
	require.NoError(t, err)

	const numGoroutines = 20

	var (
		wg       sync.WaitGroup
		rejected atomic.Int32
	)

	for i := range numGoroutines {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			text := "valid"
			if i%2 == 0 {
				text = "  "
			}

			_, err := api.CreateFortune(context.Background(), text)
			if domain.IsValidation(err) {
				rejected.Add(1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(numGoroutines/2), rejected.Load())

	count, err := s.store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(numGoroutines/2), count)
}
