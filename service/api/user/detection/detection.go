package detection

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"deepcheck_api/models/models"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"
	"deepcheck_api/service/api/middleware/auth"

	"github.com/go-chi/chi"
)

type Handler struct {
	Store *store.Store
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	results, err := h.Store.ListDetections(r.Context(), auth.GetUserIDFromContext(r), limit, offset)
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, results)
}

// Get returns one detection with its frame analyses.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.Store.GetDetection(r.Context(), auth.GetUserIDFromContext(r), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		responsex.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	frames, err := h.Store.ListFrameAnalyses(r.Context(), result.ID)
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	responsex.OK(w, map[string]interface{}{
		"detection": result,
		"frames":    frames,
	})
}

// Annotate updates the user-owned fields only: feedback, notes, bookmark
// and archive flags.
func (h *Handler) Annotate(w http.ResponseWriter, r *http.Request) {
	var req models.DetectionAnnotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updates := map[string]interface{}{}
	if req.UserFeedback != nil {
		updates["user_feedback"] = *req.UserFeedback
	}
	if req.UserNotes != nil {
		updates["user_notes"] = *req.UserNotes
	}
	if req.IsBookmarked != nil {
		updates["is_bookmarked"] = *req.IsBookmarked
	}
	if req.IsArchived != nil {
		updates["is_archived"] = *req.IsArchived
	}
	if len(updates) == 0 {
		responsex.Error(w, http.StatusBadRequest, "No annotation fields provided")
		return
	}

	err := h.Store.AnnotateDetection(r.Context(), auth.GetUserIDFromContext(r), chi.URLParam(r, "id"), updates)
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

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteDetection(r.Context(), auth.GetUserIDFromContext(r), chi.URLParam(r, "id"))
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
