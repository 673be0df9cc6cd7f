package falkorschema_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorschema"
)

func TestLookupMissBeforeRefresh(t *testing.T) {
	cache := falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
		return []string{"actor"}, nil
	})

	_, ok := cache.Lookup(falkorschema.Labels, 0)
	assert.False(t, ok)
}

func TestRefreshPopulatesAndLookupSucceeds(t *testing.T) {
	cache := falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
		return []string{"actor", "movie"}, nil
	})

	sub, err := cache.Refresh(context.Background(), falkorschema.Labels, []int64{0, 1})
	require.Nil(t, err)
	assert.Equal(t, map[int64]string{0: "actor", 1: "movie"}, sub)

	name, ok := cache.Lookup(falkorschema.Labels, 1)
	require.True(t, ok)
	assert.Equal(t, "movie", name)

	assert.Equal(t, uint64(1), cache.Version())
}

func TestVerifyFailsWhenIdMissing(t *testing.T) {
	cache := falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
		return []string{"actor"}, nil
	})

	_, err := cache.Refresh(context.Background(), falkorschema.Labels, []int64{0})
	require.Nil(t, err)

	_, ok := cache.Verify(falkorschema.Labels, []int64{0, 5})
	assert.False(t, ok)
}

func TestRefreshFailsWhenIdStillUnknown(t *testing.T) {
	cache := falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
		return []string{"actor"}, nil
	})

	_, err := cache.Refresh(context.Background(), falkorschema.Labels, []int64{9})
	require.NotNil(t, err)
	assert.Equal(t, falkorerrors.SchemaUnknownId, err.Code())
}

func TestClearResetsVersionAndDictionaries(t *testing.T) {
	cache := falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
		return []string{"actor"}, nil
	})

	_, err := cache.Refresh(context.Background(), falkorschema.Labels, []int64{0})
	require.Nil(t, err)

	cache.Clear()

	assert.Equal(t, uint64(0), cache.Version())

	_, ok := cache.Lookup(falkorschema.Labels, 0)
	assert.False(t, ok)
}

// TestConcurrentMissesIssueOneRefresh exercises the thundering-herd
// guard: many goroutines miss the same kind at once, but only one
// refresh RPC should actually fire, since the second caller re-checks
// the dictionary under the exclusive lock first.
func TestConcurrentMissesIssueOneRefresh(t *testing.T) {
	var calls atomic.Int64

	cache := falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
		calls.Add(1)

		return []string{"actor"}, nil
	})

	var wg sync.WaitGroup

	const workers = 16

	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			_, err := cache.Refresh(context.Background(), falkorschema.Labels, []int64{0})
			assert.Nil(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
}
