package cache

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, ok, err := store.Get(ctx, "lego", "whitakers")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "lego", "whitakers", []byte(`{"headword":"lego"}`), Permanent()))

	rec, ok, err := store.Get(ctx, "lego", "whitakers")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"headword":"lego"}`), rec.Payload)
	assert.False(t, rec.TTLSeconds.Valid)
	assert.Equal(t, int64(1), rec.HitCount)

	// The same key under a different source is a distinct record.
	_, ok, err = store.Get(ctx, "lego", "morpheus")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_HitCountSurvivesOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Put(ctx, "lego", "whitakers", []byte("v1"), Permanent()))
	for i := 0; i < 3; i++ {
		_, ok, err := store.Get(ctx, "lego", "whitakers")
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.NoError(t, store.Put(ctx, "lego", "whitakers", []byte("v2"), Permanent()))

	rec, ok, err := store.Get(ctx, "lego", "whitakers")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), rec.Payload)
	assert.Equal(t, int64(4), rec.HitCount)
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()

	var (
		mu  sync.Mutex
		now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(d)
	}

	store := newTestStore(t, WithClock(clock))

	require.NoError(t, store.Put(ctx, "arma", "morpheus", []byte("payload"), WithTTL(30*24*time.Hour)))
	require.NoError(t, store.Put(ctx, "uir", "whitakers", []byte("payload"), Permanent()))

	advance(29 * 24 * time.Hour)
	_, ok, err := store.Get(ctx, "arma", "morpheus")
	require.NoError(t, err)
	assert.True(t, ok, "record should still be fresh before the TTL elapses")

	advance(2 * 24 * time.Hour)
	_, ok, err = store.Get(ctx, "arma", "morpheus")
	require.NoError(t, err)
	assert.False(t, ok, "record should expire after the TTL elapses")

	// PERMANENT records never expire.
	advance(365 * 24 * time.Hour)
	_, ok, err = store.Get(ctx, "uir", "whitakers")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_GetOrFetch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var fetches atomic.Int64
	fetch := func(context.Context) ([]byte, error) {
		fetches.Add(1)
		return []byte("fetched"), nil
	}

	payload, err := store.GetOrFetch(ctx, "lego", "whitakers", Permanent(), fetch)
	require.NoError(t, err)
	assert.Equal(t, []byte("fetched"), payload)
	assert.Equal(t, int64(1), fetches.Load())

	// Second call is served from the cache.
	payload, err = store.GetOrFetch(ctx, "lego", "whitakers", Permanent(), fetch)
	require.NoError(t, err)
	assert.Equal(t, []byte("fetched"), payload)
	assert.Equal(t, int64(1), fetches.Load())
}

func TestStore_GetOrFetch_CoalescesConcurrentFetches(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var fetches atomic.Int64
	fetch := func(context.Context) ([]byte, error) {
		fetches.Add(1)
		time.Sleep(50 * time.Millisecond)
		return []byte("fetched"), nil
	}

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	payloads := make([][]byte, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payloads[i], errs[i] = store.GetOrFetch(ctx, "lego", "whitakers", Permanent(), fetch)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), fetches.Load(), "concurrent demand should coalesce into one fetch")
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []byte("fetched"), payloads[i])
	}
}

func TestStore_GetOrFetch_FailedFetchCachesNothing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	fetchErr := errors.New("upstream unavailable")
	_, err := store.GetOrFetch(ctx, "lego", "whitakers", Permanent(), func(context.Context) ([]byte, error) {
		return nil, fetchErr
	})
	require.ErrorIs(t, err, fetchErr)

	// The failure is not negative-cached; the next fetch runs and succeeds.
	payload, err := store.GetOrFetch(ctx, "lego", "whitakers", Permanent(), func(context.Context) ([]byte, error) {
		return []byte("recovered"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("recovered"), payload)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Put(ctx, "lego", "whitakers", []byte("payload"), Permanent()))
	require.NoError(t, store.Delete(ctx, "lego", "whitakers"))

	_, ok, err := store.Get(ctx, "lego", "whitakers")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent record is not an error.
	require.NoError(t, store.Delete(ctx, "lego", "whitakers"))
}

func TestStore_Stats(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Put(ctx, "lego", "whitakers", []byte("payload"), Permanent()))

	_, _, err := store.Get(ctx, "lego", "whitakers")
	require.NoError(t, err)
	_, _, err = store.Get(ctx, "absens", "whitakers")
	require.NoError(t, err)

	stats := store.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 0.5, stats.HitRatio, 0.001)
}

func TestStore_CountBySource(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Put(ctx, "lego", "whitakers", []byte("a"), Permanent()))
	require.NoError(t, store.Put(ctx, "amo", "whitakers", []byte("b"), Permanent()))
	require.NoError(t, store.Put(ctx, "arma", "morpheus", []byte("c"), Permanent()))

	counts, err := store.CountBySource(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"whitakers": 2, "morpheus": 1}, counts)
}

func TestStore_PurgeExpired(t *testing.T) {
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(func() time.Time { return now }))

	require.NoError(t, store.Put(ctx, "arma", "morpheus", []byte("a"), WithTTL(time.Hour)))
	require.NoError(t, store.Put(ctx, "lego", "whitakers", []byte("b"), Permanent()))

	now = now.Add(2 * time.Hour)
	n, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok, err := store.Get(ctx, "lego", "whitakers")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Put(ctx, "lego", "whitakers", []byte("a"), Permanent()))
	require.NoError(t, store.Put(ctx, "arma", "morpheus", []byte("b"), Permanent()))

	n, err := store.Clear(ctx, "whitakers")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.Clear(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	counts, err := store.CountBySource(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
