package store

import (
	"context"

	"deepcheck_api/models/tables"
)

func (s *Store) CreateReport(ctx context.Context, report *tables.Report) error {
	_, err := s.session(ctx).Insert(report)
	return err
}

func (s *Store) ListReportsByUser(ctx context.Context, userID string) ([]tables.Report, error) {
	var reports []tables.Report
	err := s.session(ctx).Where("user_id = ?", userID).Desc("created_at").Find(&reports)
	return reports, err
}

func (s *Store) ListReportsByStatus(ctx context.Context, status tables.ReportStatus, limit int) ([]tables.Report, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sess := s.session(ctx)
	if status != "" {
		sess = sess.Where("status = ?", status)
	}
	var reports []tables.Report
	err := sess.Asc("created_at").Limit(limit).Find(&reports)
	return reports, err
}

func (s *Store) GetReport(ctx context.Context, id string) (*tables.Report, error) {
	var report tables.Report
	has, err := s.session(ctx).Where("id = ?", id).Get(&report)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &report, nil
}

// ModerateReport is the admin path: status transition plus notes.
func (s *Store) ModerateReport(ctx context.Context, id string, status tables.ReportStatus, adminNotes string) error {
	n, err := s.session(ctx).Table(new(tables.Report)).Where("id = ?", id).
		Update(map[string]interface{}{
			"status":      status,
			"admin_notes": adminNotes,
		})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
