package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"deepcheck_api/models/models"
	"deepcheck_api/models/tables"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"
	"deepcheck_api/service/api/middleware/auth"

	"github.com/google/uuid"
)

type Handler struct {
	Store *store.Store
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Store.ListReportsByUser(r.Context(), auth.GetUserIDFromContext(r))
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, reports)
}

// Create files an issue, optionally against one of the user's detections.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReportCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		responsex.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := auth.GetUserIDFromContext(r)

	var detectionID *string
	if req.DetectionResultID != "" {
		if _, err := h.Store.GetDetection(r.Context(), userID, req.DetectionResultID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				responsex.Error(w, http.StatusNotFound, "Detection not found")
				return
			}
			responsex.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		detectionID = &req.DetectionResultID
	}

	rep := &tables.Report{
		ID:                uuid.New().String(),
		UserID:            userID,
		DetectionResultID: detectionID,
		ReportType:        req.ReportType,
		Description:       req.Description,
		Status:            tables.ReportPending,
	}
	if err := h.Store.CreateReport(r.Context(), rep); err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	responsex.Created(w, rep)
}
