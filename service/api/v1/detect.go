// Package v1 is the API-key surface. The external analysis service posts
// finished detection runs here; extension clients query the cache. The
// analysis itself never happens in this repository.
package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"deepcheck_api/models/models"
	"deepcheck_api/models/tables"
	"deepcheck_api/pkg/logger"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"
	"deepcheck_api/pkg/tasks"
	"deepcheck_api/service/api/middleware/auth"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type Handler struct {
	Store    *store.Store
	Asynq    *asynq.Client
	CacheTTL time.Duration
}

// IngestDetection records one finished run: the detection row, its frame
// analyses, a usage log entry, the user's counters and the per-frame cache.
// Webhook delivery is enqueued, not performed inline.
func (h *Handler) IngestDetection(w http.ResponseWriter, r *http.Request) {
	var req models.DetectionIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responsex.Error(w, http.StatusBadRequest, "Invalid request format. Please check your request body.")
		return
	}
	if err := req.Validate(); err != nil {
		responsex.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := auth.GetUserIDFromContext(r)

	result := &tables.DetectionResult{
		ID:                   uuid.New().String(),
		UserID:               userID,
		VideoURL:             req.VideoURL,
		VideoTitle:           req.VideoTitle,
		VideoPlatform:        req.VideoPlatform,
		PageURL:              req.PageURL,
		OverallConfidence:    req.OverallConfidence,
		AuthenticityScore:    req.AuthenticityScore,
		Status:               req.Status,
		FramesAnalyzed:       len(req.Frames),
		DetectionMethodsUsed: req.DetectionMethodsUsed,
		DetailedResults:      req.DetailedResults,
		IsLikelyAI:           req.IsLikelyAI,
		ConfidenceLevel:      req.ConfidenceLevel,
		WarningFlags:         req.WarningFlags,
		ProcessingTimeMs:     req.ProcessingTimeMs,
		ApiCosts:             req.ApiCosts,
	}

	frames := make([]tables.FrameAnalysis, 0, len(req.Frames))
	for _, f := range req.Frames {
		frames = append(frames, tables.FrameAnalysis{
			ID:                  uuid.New().String(),
			FrameNumber:         f.FrameNumber,
			FrameHash:           f.FrameHash,
			FrameTimestampMs:    f.FrameTimestampMs,
			AuthenticityScore:   f.AuthenticityScore,
			AIProbability:       f.AIProbability,
			ProviderResults:     f.ProviderResults,
			DetectedArtifacts:   f.DetectedArtifacts,
			ReverseImageMatches: f.ReverseImageMatches,
			AnalysisMethod:      f.AnalysisMethod,
			ProcessingTimeMs:    f.ProcessingTimeMs,
		})
	}

	if err := h.Store.InsertDetection(r.Context(), result, frames); err != nil {
		logger.Logger.Error("detection insert failed", "error", err.Error())
		responsex.Error(w, http.StatusInternalServerError, "Internal server error. Please try again later.")
		return
	}

	h.recordUsage(r, userID, result)
	h.fillCache(r, req, frames)
	h.enqueueWebhook(userID, result)

	responsex.Created(w, result)
}

func (h *Handler) recordUsage(r *http.Request, userID string, result *tables.DetectionResult) {
	entry := &tables.UsageLog{
		ID:           uuid.New().String(),
		UserID:       userID,
		Action:       tables.ActionDetection,
		ResourceType: "detection_result",
		ResourceID:   result.ID,
		IPAddress:    r.RemoteAddr,
		UserAgent:    r.UserAgent(),
		Endpoint:     r.URL.Path,
		CreditsUsed:  1,
		ApiCost:      result.ApiCosts,
	}
	if err := h.Store.InsertUsageLog(r.Context(), entry); err != nil {
		logger.Logger.Error("usage log insert failed", "error", err.Error())
	}
	if err := h.Store.IncrementChecksUsed(r.Context(), userID); err != nil {
		logger.Logger.Error("usage counter bump failed", "error", err.Error())
	}
}

func (h *Handler) fillCache(r *http.Request, req models.DetectionIngestRequest, frames []tables.FrameAnalysis) {
	ttl := h.CacheTTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	expires := time.Now().Add(ttl)

	for _, f := range frames {
		entry := &tables.DetectionCache{
			ID:                uuid.New().String(),
			FrameHash:         f.FrameHash,
			VideoHash:         req.VideoHash,
			AuthenticityScore: f.AuthenticityScore,
			AIProbability:     f.AIProbability,
			DetectionMethods:  req.DetectionMethodsUsed,
			DetailedResults:   f.ProviderResults,
			TimesAccessed:     1,
			LastAccessedAt:    time.Now(),
			ExpiresAt:         expires,
		}
		if err := h.Store.UpsertCacheEntry(r.Context(), entry); err != nil {
			logger.Logger.Error("cache fill failed", "frame_hash", f.FrameHash, "error", err.Error())
		}
	}
}

func (h *Handler) enqueueWebhook(userID string, result *tables.DetectionResult) {
	if h.Asynq == nil {
		return
	}

	event := tasks.EventDetectionCompleted
	if result.Status == tables.DetectionFailed {
		event = tasks.EventDetectionFailed
	}

	task, err := tasks.NewWebhookDeliverTask(userID, event, result.ID, map[string]interface{}{
		"status":             string(result.Status),
		"overall_confidence": result.OverallConfidence,
		"is_likely_ai":       result.IsLikelyAI,
		"video_url":          result.VideoURL,
	})
	if err != nil {
		logger.Logger.Error("webhook task build failed", "error", err.Error())
		return
	}
	if _, err := h.Asynq.Enqueue(task); err != nil {
		logger.Logger.Error("webhook task enqueue failed", "error", err.Error())
	}
}

// CacheLookup serves the memoized outcome for a frame hash. Expired entries
// are a miss.
func (h *Handler) CacheLookup(w http.ResponseWriter, r *http.Request) {
	entry, err := h.Store.LookupCacheEntry(r.Context(), chi.URLParam(r, "frameHash"))
	if errors.Is(err, store.ErrNotFound) {
		responsex.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		responsex.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	responsex.OK(w, entry)
}
