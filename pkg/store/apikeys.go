package store

import (
	"context"
	"time"

	"deepcheck_api/models/tables"
)

func (s *Store) CreateApiKey(ctx context.Context, key *tables.ApiKey) error {
	_, err := s.session(ctx).Insert(key)
	return err
}

func (s *Store) ListApiKeys(ctx context.Context, userID string) ([]tables.ApiKey, error) {
	var keys []tables.ApiKey
	err := s.session(ctx).Where("user_id = ?", userID).Desc("created_at").Find(&keys)
	return keys, err
}

func (s *Store) GetApiKeyByHash(ctx context.Context, keyHash string) (*tables.ApiKey, error) {
	var key tables.ApiKey
	has, err := s.session(ctx).Where("key_hash = ?", keyHash).Get(&key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &key, nil
}

// TouchApiKey records a successful use of the key.
func (s *Store) TouchApiKey(ctx context.Context, id string, at time.Time) error {
	_, err := s.session(ctx).Exec(
		"UPDATE api_keys SET requests_count = requests_count + 1, last_used_at = ? WHERE id = ?",
		at, id)
	return err
}

func (s *Store) DeleteApiKey(ctx context.Context, userID, id string) error {
	n, err := s.session(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(new(tables.ApiKey))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
