package webhook

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"deepcheck_api/models/models"
	"deepcheck_api/models/tables"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"
	"deepcheck_api/service/api/middleware/auth"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type Handler struct {
	Store *store.Store
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	hooks, err := h.Store.ListWebhooks(r.Context(), auth.GetUserIDFromContext(r))
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, hooks)
}

// AddConfig registers a callback URL and mints its signing secret. The
// secret is returned once so the receiver can verify signatures.
func (h *Handler) AddConfig(w http.ResponseWriter, r *http.Request) {
	var req models.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		responsex.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validURL(req.URL) {
		responsex.Error(w, http.StatusBadRequest, "invalid URL format")
		return
	}

	secret, err := newSecret()
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hook := &tables.Webhook{
		ID:       uuid.New().String(),
		UserID:   auth.GetUserIDFromContext(r),
		URL:      req.URL,
		Events:   req.Events,
		Secret:   secret,
		IsActive: true,
	}
	if err := h.Store.CreateWebhook(r.Context(), hook); err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Failed to add webhook config")
		return
	}

	responsex.Created(w, map[string]interface{}{
		"webhook": hook,
		"secret":  secret,
	})
}

func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		models.WebhookRequest
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		responsex.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validURL(req.URL) {
		responsex.Error(w, http.StatusBadRequest, "invalid URL format")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	err := h.Store.UpdateWebhook(r.Context(), auth.GetUserIDFromContext(r),
		chi.URLParam(r, "id"), req.URL, req.Events, isActive)
	if errors.Is(err, store.ErrNotFound) {
		responsex.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, map[string]interface{}{})
}

func (h *Handler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteWebhook(r.Context(), auth.GetUserIDFromContext(r), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		responsex.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, map[string]interface{}{})
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func newSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "whsec_" + hex.EncodeToString(buf), nil
}
