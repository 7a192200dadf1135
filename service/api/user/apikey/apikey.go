package apikey

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"deepcheck_api/models/models"
	"deepcheck_api/models/tables"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"
	"deepcheck_api/service/api/middleware/auth"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

const defaultRateLimit = 60

type Handler struct {
	Store *store.Store
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.Store.ListApiKeys(r.Context(), auth.GetUserIDFromContext(r))
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, keys)
}

// Create mints a new key. The plaintext secret appears in this response and
// nowhere else; only its sha256 is stored.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ApiKeyCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		responsex.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	secret, err := newSecret()
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sum := sha256.Sum256([]byte(secret))

	rateLimit := req.RateLimit
	if rateLimit <= 0 {
		rateLimit = defaultRateLimit
	}

	key := &tables.ApiKey{
		ID:        uuid.New().String(),
		UserID:    auth.GetUserIDFromContext(r),
		KeyHash:   hex.EncodeToString(sum[:]),
		KeyPrefix: secret[:11],
		Name:      req.Name,
		Scopes:    req.Scopes,
		RateLimit: rateLimit,
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
	}
	if err := h.Store.CreateApiKey(r.Context(), key); err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	responsex.Created(w, models.ApiKeyCreated{Key: secret, ApiKey: *key})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteApiKey(r.Context(), auth.GetUserIDFromContext(r), chi.URLParam(r, "id"))
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

func newSecret() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "dc_" + hex.EncodeToString(buf), nil
}
