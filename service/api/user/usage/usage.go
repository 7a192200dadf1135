package usage

import (
	"errors"
	"net/http"
	"time"

	"deepcheck_api/models/models"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"
	"deepcheck_api/service/api/middleware/auth"
)

type Handler struct {
	Store *store.Store
}

// GetCurrentUsage reports the user's counters against the limits of the
// pricing plan for their tier. The user row's own daily limit wins when the
// plan catalog has no entry.
func (h *Handler) GetCurrentUsage(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUserByID(r.Context(), auth.GetUserIDFromContext(r))
	if errors.Is(err, store.ErrNotFound) {
		responsex.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	usage := models.UsageResponse{
		Tier:              user.Tier,
		DailyChecksUsed:   user.DailyChecksUsed,
		DailyChecksLimit:  user.DailyChecksLimit,
		MonthlyChecksUsed: user.MonthlyChecksUsed,
		LastResetAt:       user.LastResetAt,
	}

	plan, err := h.Store.GetPlanByTier(r.Context(), user.Tier)
	if err == nil {
		usage.MonthlyLimit = plan.MonthlyChecksLimit
		if plan.DailyChecksLimit > usage.DailyChecksLimit {
			usage.DailyChecksLimit = plan.DailyChecksLimit
		}
	}

	responsex.OK(w, usage)
}

func (h *Handler) GetUsageHistory(w http.ResponseWriter, r *http.Request) {
	startDateStr := r.URL.Query().Get("start_date")
	endDateStr := r.URL.Query().Get("end_date")

	var startDate, endDate time.Time
	var err error

	if startDateStr != "" {
		startDate, err = time.Parse("2006-01-02", startDateStr)
		if err != nil {
			responsex.Error(w, http.StatusBadRequest, "Invalid start_date format. Use YYYY-MM-DD.")
			return
		}
	}

	if endDateStr != "" {
		endDate, err = time.Parse("2006-01-02", endDateStr)
		if err != nil {
			responsex.Error(w, http.StatusBadRequest, "Invalid end_date format. Use YYYY-MM-DD.")
			return
		}
	}

	if !startDate.IsZero() && !endDate.IsZero() && startDate.After(endDate) {
		responsex.Error(w, http.StatusBadRequest, "start_date must be before end_date.")
		return
	}

	logs, err := h.Store.ListUsageLogs(r.Context(), auth.GetUserIDFromContext(r), startDate, endDate, 0)
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	responsex.OK(w, logs)
}
