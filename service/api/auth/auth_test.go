package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deepcheck_api/models/models"
	"deepcheck_api/models/tables"
	"deepcheck_api/pkg/credauth"

	"github.com/stretchr/testify/require"
)

// fakeAuthority records calls so tests can assert that invalid payloads are
// rejected before delegation.
type fakeAuthority struct {
	signUpCalls int
	signInCalls int
	signUpErr   error
	signInErr   error
	token       string
}

func (f *fakeAuthority) SignUpEmail(ctx context.Context, params credauth.SignUpParams) (*tables.User, error) {
	f.signUpCalls++
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &tables.User{ID: "u-1", Email: params.Email, Name: params.Name, Tier: tables.TierFree}, nil
}

func (f *fakeAuthority) SignInEmail(ctx context.Context, params credauth.SignInParams) (*tables.User, string, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return nil, "", f.signInErr
	}
	return &tables.User{ID: "u-1", Email: params.Email}, f.token, nil
}

func post(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, models.Response) {
	t.Helper()

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	var envelope models.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec, envelope
}

func TestSignupEmail(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		authErr    error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "created",
			body:       `{"email":"user@example.com","password":"password1","name":"Alice"}`,
			wantStatus: http.StatusCreated,
			wantCalls:  1,
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email",
			body:       `{"email":"nope","password":"password1","name":"Alice"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"email":"user@example.com","password":"short","name":"Alice"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"user@example.com","password":"password1","name":"Alice"}`,
			authErr:    credauth.ErrEmailTaken,
			wantStatus: http.StatusConflict,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthority{signUpErr: tt.authErr}
			h := &Handler{Authority: fake}

			rec, envelope := post(t, h.SignupEmail, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantStatus, envelope.Code)
			require.Equal(t, tt.wantCalls, fake.signUpCalls)
		})
	}
}

func TestSignupEmailResponseOmitsToken(t *testing.T) {
	h := &Handler{Authority: &fakeAuthority{}}

	rec, _ := post(t, h.SignupEmail, `{"email":"user@example.com","password":"password1","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotContains(t, rec.Body.String(), `"token"`)
	require.Empty(t, rec.Header().Get("Authorization"))
}

func TestSigninEmail(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		authErr    error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "ok",
			body:       `{"email":"user@example.com","password":"password1"}`,
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "missing password",
			body:       `{"email":"user@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad credentials",
			body:       `{"email":"user@example.com","password":"wrong"}`,
			authErr:    credauth.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthority{signInErr: tt.authErr, token: "tok-abc"}
			h := &Handler{Authority: fake}

			rec, envelope := post(t, h.SigninEmail, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantStatus, envelope.Code)
			require.Equal(t, tt.wantCalls, fake.signInCalls)
		})
	}
}

func TestSigninEmailReturnsToken(t *testing.T) {
	h := &Handler{Authority: &fakeAuthority{token: "tok-abc"}}

	rec, envelope := post(t, h.SigninEmail, `{"email":"user@example.com","password":"password1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "tok-abc", rec.Header().Get("Authorization"))

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(data, &auth))
	require.Equal(t, "tok-abc", auth.Token)
	require.Equal(t, "u-1", auth.User.ID)
}
