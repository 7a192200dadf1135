package account

import (
	"errors"
	"net/http"

	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"
	"deepcheck_api/service/api/middleware/auth"
)

type Handler struct {
	Store *store.Store
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUserByID(r.Context(), auth.GetUserIDFromContext(r))
	if errors.Is(err, store.ErrNotFound) {
		responsex.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, user)
}

// Delete removes the account and everything it owns. This is the cascade
// entry point: detections, frames, sessions, keys, webhooks, reports and
// billing rows all go with the user.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteUser(r.Context(), auth.GetUserIDFromContext(r))
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
