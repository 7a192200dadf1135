// Package auth holds the public email sign-up/sign-in endpoints. Handlers
// validate, delegate to the credential authority and shape the envelope;
// they never touch credentials themselves.
package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"deepcheck_api/models/models"
	"deepcheck_api/pkg/credauth"
	"deepcheck_api/pkg/logger"
	responsex "deepcheck_api/pkg/response"
)

type Handler struct {
	Authority credauth.Authority
}

func (h *Handler) SignupEmail(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request format. Please check your request body.")
		return
	}

	if err := req.Validate(); err != nil {
		responsex.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Authority.SignUpEmail(r.Context(), credauth.SignUpParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if errors.Is(err, credauth.ErrEmailTaken) {
		responsex.Error(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != nil {
		logger.Logger.Error("signup failed", "error", err.Error())
		responsex.Error(w, http.StatusInternalServerError, "Internal server error. Please try again later.")
		return
	}

	responsex.Created(w, models.AuthResponse{User: user})
}

func (h *Handler) SigninEmail(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request format. Please check your request body.")
		return
	}

	if err := req.Validate(); err != nil {
		responsex.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.Authority.SignInEmail(r.Context(), credauth.SignInParams{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: remoteIP(r),
		UserAgent: r.UserAgent(),
	})
	if errors.Is(err, credauth.ErrInvalidCredentials) {
		responsex.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		logger.Logger.Error("signin failed", "error", err.Error())
		responsex.Error(w, http.StatusInternalServerError, "Internal server error. Please try again later.")
		return
	}

	// The token rides in the Authorization header as well as the body so
	// extension clients can pick either up.
	w.Header().Set("Authorization", token)
	responsex.OK(w, models.AuthResponse{User: user, Token: token})
}

func remoteIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}
