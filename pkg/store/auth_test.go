package store

import (
	"context"
	"testing"
	"time"

	"deepcheck_api/models/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetValidSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "sessions@example.com")

	require.NoError(t, s.CreateSession(ctx, &tables.Session{
		ID: uuid.New().String(), UserID: user.ID, Token: "tok-live",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, s.CreateSession(ctx, &tables.Session{
		ID: uuid.New().String(), UserID: user.ID, Token: "tok-stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	session, err := s.GetValidSession(ctx, "tok-live")
	require.NoError(t, err)
	require.Equal(t, user.ID, session.UserID)

	_, err = s.GetValidSession(ctx, "tok-stale")
	require.ErrorIs(t, err, ErrSessionExpired)

	_, err = s.GetValidSession(ctx, "tok-unknown")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateSessionTokenRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "tokens@example.com")

	session := &tables.Session{
		ID: uuid.New().String(), UserID: user.ID, Token: "tok-unique",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, s.CreateSession(ctx, session))

	clash := &tables.Session{
		ID: uuid.New().String(), UserID: user.ID, Token: "tok-unique",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.Error(t, s.CreateSession(ctx, clash))
}
