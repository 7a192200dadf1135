package credauth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"deepcheck_api/models/tables"
	"deepcheck_api/pkg/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultDailyChecksLimit = 20

// Local is the built-in Authority: bcrypt hashes in the email account row,
// opaque random session tokens in the sessions table.
type Local struct {
	store      *store.Store
	sessionTTL time.Duration
}

func NewLocal(s *store.Store, sessionTTL time.Duration) *Local {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &Local{store: s, sessionTTL: sessionTTL}
}

func (l *Local) SignUpEmail(ctx context.Context, params SignUpParams) (*tables.User, error) {
	_, err := l.store.GetUserByEmail(ctx, params.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &tables.User{
		ID:               uuid.New().String(),
		Email:            params.Email,
		Name:             params.Name,
		Tier:             tables.TierFree,
		DailyChecksLimit: defaultDailyChecksLimit,
		LastResetAt:      now,
	}
	account := &tables.Account{
		ID:                uuid.New().String(),
		UserID:            user.ID,
		Provider:          tables.ProviderEmail,
		ProviderAccountID: params.Email,
		Password:          string(hash),
	}

	if err := l.store.CreateUserWithAccount(ctx, user, account); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (l *Local) SignInEmail(ctx context.Context, params SignInParams) (*tables.User, string, error) {
	user, err := l.store.GetUserByEmail(ctx, params.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	account, err := l.store.GetAccount(ctx, tables.ProviderEmail, params.Email)
	if errors.Is(err, store.ErrNotFound) {
		// SSO-only user, no password to check.
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(params.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	session := &tables.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(l.sessionTTL),
		IPAddress: params.IPAddress,
		UserAgent: params.UserAgent,
	}
	if err := l.store.CreateSession(ctx, session); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	if err := l.store.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", err
	}
	user.LastLoginAt = &now

	return user, token, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
