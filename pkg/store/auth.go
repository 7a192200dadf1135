package store

import (
	"context"
	"time"

	"deepcheck_api/models/tables"

	"xorm.io/xorm"
)

var ErrSessionExpired = sessionExpiredError{}

type sessionExpiredError struct{}

func (sessionExpiredError) Error() string { return "store: session expired" }

// CreateUserWithAccount inserts the user and its linked provider account
// atomically. The unique index on users.email backs the duplicate check
// under concurrent signups.
func (s *Store) CreateUserWithAccount(ctx context.Context, user *tables.User, account *tables.Account) error {
	return s.inTx(ctx, func(sess *xorm.Session) error {
		if _, err := sess.Insert(user); err != nil {
			return err
		}
		_, err := sess.Insert(account)
		return err
	})
}

func (s *Store) GetAccount(ctx context.Context, provider tables.AuthProvider, providerAccountID string) (*tables.Account, error) {
	var account tables.Account
	has, err := s.session(ctx).
		Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		Get(&account)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (s *Store) CreateSession(ctx context.Context, session *tables.Session) error {
	_, err := s.session(ctx).Insert(session)
	return err
}

// GetValidSession resolves a session token, rejecting expired sessions.
func (s *Store) GetValidSession(ctx context.Context, token string) (*tables.Session, error) {
	var session tables.Session
	has, err := s.session(ctx).Where("token = ?", token).Get(&session)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}
	if session.ExpiresAt.Before(time.Now()) {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	_, err := s.session(ctx).Where("token = ?", token).Delete(new(tables.Session))
	return err
}

func (s *Store) CountSessions(ctx context.Context, userID string) (int64, error) {
	return s.session(ctx).Where("user_id = ?", userID).Count(new(tables.Session))
}
