// Package credauth is the credential authority: the one component that may
// verify passwords and mint session tokens. The rest of the codebase only
// sees the two-operation Authority interface, so a hosted identity provider
// can be swapped in behind it.
package credauth

import (
	"context"
	"errors"

	"deepcheck_api/models/tables"
)

var (
	ErrEmailTaken         = errors.New("credauth: email already registered")
	ErrInvalidCredentials = errors.New("credauth: invalid email or password")
)

type SignUpParams struct {
	Email    string
	Name     string
	Password string
}

type SignInParams struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type Authority interface {
	// SignUpEmail registers a new email/password user, creating the User and
	// its email Account row. Duplicate emails fail with ErrEmailTaken and
	// leave no rows behind.
	SignUpEmail(ctx context.Context, params SignUpParams) (*tables.User, error)

	// SignInEmail verifies credentials and mints an opaque session token,
	// persisting the Session row. Bad credentials fail with
	// ErrInvalidCredentials and create no session.
	SignInEmail(ctx context.Context, params SignInParams) (*tables.User, string, error)
}
