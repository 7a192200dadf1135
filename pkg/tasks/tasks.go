// Package tasks defines the asynq task types: webhook delivery for detection
// events and the periodic detection-cache purge.
package tasks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"deepcheck_api/config"
	"deepcheck_api/pkg/httpclient"
	"deepcheck_api/pkg/logger"
	"deepcheck_api/pkg/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/iancoleman/orderedmap"
)

const (
	WebhookDeliver = "webhook:deliver"
	CachePurge     = "cache:purge"
)

const (
	EventDetectionCompleted = "detection.completed"
	EventDetectionFailed    = "detection.failed"
)

var AsynqClient *asynq.Client

func InitClient(cfg config.Redis) {
	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
	})
}

type WebhookDeliverPayload struct {
	TaskID      string                 `json:"task_id"`
	UserID      string                 `json:"user_id"`
	Event       string                 `json:"event"`
	DetectionID string                 `json:"detection_id"`
	Data        map[string]interface{} `json:"data"`
}

func NewWebhookDeliverTask(userID, event, detectionID string, data map[string]interface{}) (*asynq.Task, error) {
	payload, err := json.Marshal(WebhookDeliverPayload{
		TaskID:      uuid.New().String(),
		UserID:      userID,
		Event:       event,
		DetectionID: detectionID,
		Data:        data,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(WebhookDeliver, payload), nil
}

func NewCachePurgeTask() *asynq.Task {
	return asynq.NewTask(CachePurge, nil)
}

// Handler carries the worker-side dependencies for task processing.
type Handler struct {
	Store       *store.Store
	MaxAttempts int
}

func (h *Handler) HandleWebhookDeliverTask(ctx context.Context, t *asynq.Task) error {
	var p WebhookDeliverPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	hooks, err := h.Store.ListActiveWebhooks(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("list webhooks: %v", err)
	}

	for _, hook := range hooks {
		if !subscribed(hook.Events, p.Event) {
			continue
		}

		body, err := CanonicalBody(p)
		if err != nil {
			return fmt.Errorf("encode payload: %v: %w", err, asynq.SkipRetry)
		}
		h.deliver(ctx, hook.ID, hook.URL, hook.Secret, p.Event, body)
	}

	return nil
}

// deliver posts the signed payload, retrying a bounded number of times.
// Every failed attempt bumps the hook's failure counter; a success resets it.
func (h *Handler) deliver(ctx context.Context, hookID, url, secret, event string, body []byte) {
	maxAttempts := h.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
		if err != nil {
			logger.Logger.Error("webhook request build failed", "webhook_id", hookID, "error", err.Error())
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Deepcheck-Event", event)
		req.Header.Set("X-Deepcheck-Signature", "sha256="+Sign(secret, body))

		resp, err := httpclient.Client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				if err := h.Store.MarkWebhookTriggered(ctx, hookID, time.Now()); err != nil {
					logger.Logger.Error("webhook mark triggered failed", "webhook_id", hookID, "error", err.Error())
				}
				return
			}
		}

		if err := h.Store.BumpWebhookFailure(ctx, hookID); err != nil {
			logger.Logger.Error("webhook failure bump failed", "webhook_id", hookID, "error", err.Error())
		}
		logger.Logger.Warn("webhook delivery failed",
			"webhook_id", hookID, "attempt", attempt, "max_attempts", maxAttempts)
		time.Sleep(2 * time.Second)
	}
}

func (h *Handler) HandleCachePurgeTask(ctx context.Context, t *asynq.Task) error {
	n, err := h.Store.PurgeExpiredCache(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("purge cache: %v", err)
	}
	logger.Logger.Info("detection cache purged", "deleted", n)
	return nil
}

// CanonicalBody encodes the payload with a fixed key order so the HMAC
// signature is stable across deliveries of the same event.
func CanonicalBody(p WebhookDeliverPayload) ([]byte, error) {
	om := orderedmap.New()
	om.SetEscapeHTML(false)
	om.Set("event", p.Event)
	om.Set("task_id", p.TaskID)
	om.Set("detection_id", p.DetectionID)
	om.Set("data", p.Data)

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(om); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Sign computes the hex HMAC-SHA256 of body under the webhook secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func subscribed(events []string, event string) bool {
	for _, e := range events {
		if e == event || e == "*" {
			return true
		}
	}
	return false
}
