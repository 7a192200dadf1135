package store

import (
	"context"
	"time"

	"deepcheck_api/models/tables"
)

// UpsertCacheEntry fills or refreshes the memoized outcome for a frame hash.
// A refresh keeps the original access counter.
func (s *Store) UpsertCacheEntry(ctx context.Context, entry *tables.DetectionCache) error {
	sess := s.engine.NewSession().Context(ctx)
	defer sess.Close()

	var existing tables.DetectionCache
	has, err := sess.Where("frame_hash = ?", entry.FrameHash).Get(&existing)
	if err != nil {
		return err
	}
	if !has {
		_, err = sess.Insert(entry)
		return err
	}

	entry.ID = existing.ID
	entry.TimesAccessed = existing.TimesAccessed
	_, err = sess.Where("id = ?", existing.ID).
		Cols("video_hash", "authenticity_score", "ai_probability",
			"detection_methods", "detailed_results", "expires_at").
		Update(entry)
	return err
}

// LookupCacheEntry returns a live entry for the frame hash and bumps its
// access counters. Expired entries are a miss.
func (s *Store) LookupCacheEntry(ctx context.Context, frameHash string) (*tables.DetectionCache, error) {
	sess := s.engine.NewSession().Context(ctx)
	defer sess.Close()

	var entry tables.DetectionCache
	has, err := sess.Where("frame_hash = ?", frameHash).Get(&entry)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	if entry.ExpiresAt.Before(time.Now()) {
		return nil, ErrNotFound
	}

	now := time.Now()
	if _, err := sess.Exec(
		"UPDATE detection_cache SET times_accessed = times_accessed + 1, last_accessed_at = ? WHERE id = ?",
		now, entry.ID); err != nil {
		return nil, err
	}
	entry.TimesAccessed++
	entry.LastAccessedAt = now
	return &entry, nil
}

// PurgeExpiredCache drops entries past their expiry watermark.
func (s *Store) PurgeExpiredCache(ctx context.Context, now time.Time) (int64, error) {
	return s.session(ctx).Where("expires_at < ?", now).Delete(new(tables.DetectionCache))
}
