package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"deepcheck_api/models/models"
	"deepcheck_api/models/tables"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"

	"github.com/go-chi/chi"
)

type Handler struct {
	Store *store.Store
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	status := tables.ReportStatus(r.URL.Query().Get("status"))
	reports, err := h.Store.ListReportsByStatus(r.Context(), status, 0)
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, reports)
}

func (h *Handler) ModerateReport(w http.ResponseWriter, r *http.Request) {
	var req models.ReportModerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		responsex.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.Store.ModerateReport(r.Context(), chi.URLParam(r, "id"), req.Status, req.AdminNotes)
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
