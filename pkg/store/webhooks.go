package store

import (
	"context"
	"time"

	"deepcheck_api/models/tables"
)

func (s *Store) CreateWebhook(ctx context.Context, hook *tables.Webhook) error {
	_, err := s.session(ctx).Insert(hook)
	return err
}

func (s *Store) ListWebhooks(ctx context.Context, userID string) ([]tables.Webhook, error) {
	var hooks []tables.Webhook
	err := s.session(ctx).Where("user_id = ?", userID).Find(&hooks)
	return hooks, err
}

func (s *Store) GetWebhook(ctx context.Context, userID, id string) (*tables.Webhook, error) {
	var hook tables.Webhook
	has, err := s.session(ctx).Where("id = ? AND user_id = ?", id, userID).Get(&hook)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &hook, nil
}

func (s *Store) UpdateWebhook(ctx context.Context, userID, id string, url string, events []string, isActive bool) error {
	n, err := s.session(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Cols("url", "events", "is_active").
		Update(&tables.Webhook{URL: url, Events: events, IsActive: isActive})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteWebhook(ctx context.Context, userID, id string) error {
	n, err := s.session(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(new(tables.Webhook))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActiveWebhooks returns the user's active hooks; event filtering happens
// in the delivery handler since events is a json column.
func (s *Store) ListActiveWebhooks(ctx context.Context, userID string) ([]tables.Webhook, error) {
	var hooks []tables.Webhook
	err := s.session(ctx).Where("user_id = ? AND is_active = ?", userID, true).Find(&hooks)
	return hooks, err
}

func (s *Store) MarkWebhookTriggered(ctx context.Context, id string, at time.Time) error {
	_, err := s.session(ctx).Exec(
		"UPDATE webhooks SET last_triggered_at = ?, failure_count = 0 WHERE id = ?", at, id)
	return err
}

func (s *Store) BumpWebhookFailure(ctx context.Context, id string) error {
	_, err := s.session(ctx).Exec(
		"UPDATE webhooks SET failure_count = failure_count + 1 WHERE id = ?", id)
	return err
}
