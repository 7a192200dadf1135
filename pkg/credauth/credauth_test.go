package credauth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"deepcheck_api/models/tables"
	"deepcheck_api/pkg/store"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
	"xorm.io/xorm"
)

func newTestAuthority(t *testing.T) (*Local, *store.Store) {
	t.Helper()

	engine, err := xorm.NewEngine("sqlite", filepath.Join(t.TempDir(), "credauth_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	require.NoError(t, engine.Sync(tables.All()...))

	s := store.New(engine)
	return NewLocal(s, time.Hour), s
}

func TestSignUpEmail(t *testing.T) {
	authority, s := newTestAuthority(t)
	ctx := context.Background()

	user, err := authority.SignUpEmail(ctx, SignUpParams{
		Email:    "new@example.com",
		Name:     "New User",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, tables.TierFree, user.Tier)
	require.Equal(t, 20, user.DailyChecksLimit)

	// The stored credential is a bcrypt hash, never the plaintext.
	account, err := s.GetAccount(ctx, tables.ProviderEmail, "new@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2hunter2", account.Password)
	require.Contains(t, account.Password, "$2a$")

	_, err = authority.SignUpEmail(ctx, SignUpParams{
		Email:    "new@example.com",
		Name:     "Second Try",
		Password: "hunter2hunter2",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInEmail(t *testing.T) {
	authority, s := newTestAuthority(t)
	ctx := context.Background()

	user, err := authority.SignUpEmail(ctx, SignUpParams{
		Email:    "login@example.com",
		Name:     "Login User",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	got, token, err := authority.SignInEmail(ctx, SignInParams{
		Email:    "login@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Len(t, token, 64)
	require.NotNil(t, got.LastLoginAt)

	session, err := s.GetValidSession(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, session.UserID)
}

func TestSignInEmailRejectsBadCredentials(t *testing.T) {
	authority, s := newTestAuthority(t)
	ctx := context.Background()

	user, err := authority.SignUpEmail(ctx, SignUpParams{
		Email:    "victim@example.com",
		Name:     "Victim",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, _, err = authority.SignInEmail(ctx, SignInParams{
		Email:    "victim@example.com",
		Password: "wrong-horse",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = authority.SignInEmail(ctx, SignInParams{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// No session is minted on a failed attempt.
	n, err := s.CountSessions(ctx, user.ID)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSignInTokensAreUnique(t *testing.T) {
	authority, _ := newTestAuthority(t)
	ctx := context.Background()

	_, err := authority.SignUpEmail(ctx, SignUpParams{
		Email:    "multi@example.com",
		Name:     "Multi Device",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, first, err := authority.SignInEmail(ctx, SignInParams{Email: "multi@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	_, second, err := authority.SignInEmail(ctx, SignInParams{Email: "multi@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
