package store

import (
	"context"
	"time"

	"deepcheck_api/models/tables"
)

func (s *Store) InsertUsageLog(ctx context.Context, entry *tables.UsageLog) error {
	_, err := s.session(ctx).Insert(entry)
	return err
}

func (s *Store) ListUsageLogs(ctx context.Context, userID string, from, to time.Time, limit int) ([]tables.UsageLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	sess := s.session(ctx).Where("user_id = ?", userID)
	if !from.IsZero() {
		sess = sess.And("created_at >= ?", from)
	}
	if !to.IsZero() {
		sess = sess.And("created_at <= ?", to)
	}
	var logs []tables.UsageLog
	err := sess.Desc("created_at").Limit(limit).Find(&logs)
	return logs, err
}
