package store

import (
	"context"
	"testing"
	"time"

	"deepcheck_api/models/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func cacheEntry(frameHash string, expiresAt time.Time) *tables.DetectionCache {
	return &tables.DetectionCache{
		ID:                uuid.New().String(),
		FrameHash:         frameHash,
		VideoHash:         "vid-1",
		AuthenticityScore: 0.2,
		AIProbability:     0.8,
		DetectionMethods:  []string{"sightengine"},
		TimesAccessed:     1,
		LastAccessedAt:    time.Now(),
		ExpiresAt:         expiresAt,
	}
}

func TestCacheLookupBumpsAccessCounter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCacheEntry(ctx, cacheEntry("fh-1", time.Now().Add(time.Hour))))

	got, err := s.LookupCacheEntry(ctx, "fh-1")
	require.NoError(t, err)
	require.Equal(t, 2, got.TimesAccessed)

	got, err = s.LookupCacheEntry(ctx, "fh-1")
	require.NoError(t, err)
	require.Equal(t, 3, got.TimesAccessed)

	_, err = s.LookupCacheEntry(ctx, "fh-missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCacheUpsertRefreshKeepsCounter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCacheEntry(ctx, cacheEntry("fh-1", time.Now().Add(time.Hour))))
	_, err := s.LookupCacheEntry(ctx, "fh-1")
	require.NoError(t, err)

	refresh := cacheEntry("fh-1", time.Now().Add(48*time.Hour))
	refresh.AIProbability = 0.5
	require.NoError(t, s.UpsertCacheEntry(ctx, refresh))

	got, err := s.LookupCacheEntry(ctx, "fh-1")
	require.NoError(t, err)
	require.Equal(t, 0.5, got.AIProbability)
	require.Equal(t, 3, got.TimesAccessed)
}

func TestCacheExpiredEntryIsMiss(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCacheEntry(ctx, cacheEntry("fh-old", time.Now().Add(-time.Minute))))

	_, err := s.LookupCacheEntry(ctx, "fh-old")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPurgeExpiredCache(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCacheEntry(ctx, cacheEntry("fh-old", time.Now().Add(-time.Minute))))
	require.NoError(t, s.UpsertCacheEntry(ctx, cacheEntry("fh-live", time.Now().Add(time.Hour))))

	n, err := s.PurgeExpiredCache(ctx, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.LookupCacheEntry(ctx, "fh-live")
	require.NoError(t, err)
}
