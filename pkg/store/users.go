package store

import (
	"context"
	"fmt"
	"time"

	"deepcheck_api/models/tables"

	"xorm.io/xorm"
)

func (s *Store) GetUserByID(ctx context.Context, id string) (*tables.User, error) {
	var user tables.User
	has, err := s.session(ctx).Where("id = ?", id).Get(&user)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*tables.User, error) {
	var user tables.User
	has, err := s.session(ctx).Where("email = ?", email).Get(&user)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Store) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := s.session(ctx).Table(new(tables.User)).Where("id = ?", userID).
		Update(map[string]interface{}{"last_login_at": at})
	return err
}

// IncrementChecksUsed bumps the daily and monthly usage counters after a
// detection has been recorded. The counter reset schedule lives outside this
// repository.
func (s *Store) IncrementChecksUsed(ctx context.Context, userID string) error {
	res, err := s.session(ctx).Exec(
		"UPDATE users SET daily_checks_used = daily_checks_used + 1, monthly_checks_used = monthly_checks_used + 1 WHERE id = ?",
		userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes a user and everything the user owns in one transaction:
// accounts, sessions, detection results (with their frame analyses), usage
// logs, api keys, webhooks, reports, subscriptions, invoices, payments and
// payment methods all cascade. Rows in other users' tables referencing the
// deleted detections/subscriptions/invoices are not possible by schema, so
// no set-null step is needed here; see DeleteDetectionResult and the billing
// deletes for the set-null relations.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	return s.inTx(ctx, func(sess *xorm.Session) error {
		var detectionIDs []string
		if err := sess.Table(new(tables.DetectionResult)).Where("user_id = ?", userID).
			Cols("id").Find(&detectionIDs); err != nil {
			return fmt.Errorf("list detections: %w", err)
		}
		for _, id := range detectionIDs {
			if _, err := sess.Where("detection_result_id = ?", id).Delete(new(tables.FrameAnalysis)); err != nil {
				return fmt.Errorf("delete frame analyses: %w", err)
			}
		}

		cascades := []interface{}{
			new(tables.DetectionResult),
			new(tables.Account),
			new(tables.Session),
			new(tables.UsageLog),
			new(tables.ApiKey),
			new(tables.Webhook),
			new(tables.Report),
			new(tables.Subscription),
			new(tables.Invoice),
			new(tables.Payment),
			new(tables.PaymentMethod),
		}
		for _, bean := range cascades {
			if _, err := sess.Where("user_id = ?", userID).Delete(bean); err != nil {
				return fmt.Errorf("cascade delete: %w", err)
			}
		}

		n, err := sess.Where("id = ?", userID).Delete(new(tables.User))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
