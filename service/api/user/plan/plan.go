package plan

import (
	"errors"
	"net/http"

	"deepcheck_api/models/models"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"
	"deepcheck_api/service/api/middleware/auth"
)

type Handler struct {
	Store *store.Store
}

// CurrentPlan returns the pricing plan for the user's tier and, when one
// exists, the live subscription mirroring the payment provider.
func (h *Handler) CurrentPlan(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUserByID(r.Context(), auth.GetUserIDFromContext(r))
	if errors.Is(err, store.ErrNotFound) {
		responsex.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := models.PlanResponse{}

	if plan, err := h.Store.GetPlanByTier(r.Context(), user.Tier); err == nil {
		resp.Plan = plan
	}
	if sub, err := h.Store.CurrentSubscription(r.Context(), user.ID); err == nil {
		resp.Subscription = sub
	}

	responsex.OK(w, resp)
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Store.ListActivePlans(r.Context())
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, plans)
}
