package tasks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalBodyStableOrder(t *testing.T) {
	p := WebhookDeliverPayload{
		TaskID:      "task-1",
		UserID:      "user-1",
		Event:       EventDetectionCompleted,
		DetectionID: "det-1",
		Data: map[string]interface{}{
			"video_url":    "https://example.com/watch?v=abc&t=1",
			"is_likely_ai": true,
		},
	}

	body, err := CanonicalBody(p)
	require.NoError(t, err)

	want := `{"event":"detection.completed","task_id":"task-1","detection_id":"det-1",` +
		`"data":{"is_likely_ai":true,"video_url":"https://example.com/watch?v=abc&t=1"}}`
	require.Equal(t, want, string(body))

	// Same payload, same bytes, so the signature is reproducible.
	again, err := CanonicalBody(p)
	require.NoError(t, err)
	require.Equal(t, body, again)
}

func TestCanonicalBodyDoesNotEscapeHTML(t *testing.T) {
	body, err := CanonicalBody(WebhookDeliverPayload{
		TaskID:      "task-1",
		Event:       EventDetectionFailed,
		DetectionID: "det-1",
		Data:        map[string]interface{}{"url": "https://example.com/a?x=1&y=2"},
	})
	require.NoError(t, err)
	require.NotContains(t, string(body), "\\u0026")
	require.Contains(t, string(body), "&y=2")
}

func TestSign(t *testing.T) {
	body := []byte(`{"event":"detection.completed"}`)

	sig := Sign("whsec_abc", body)
	require.Len(t, sig, 64)
	require.Equal(t, sig, Sign("whsec_abc", body))
	require.NotEqual(t, sig, Sign("whsec_other", body))
	require.NotEqual(t, sig, Sign("whsec_abc", []byte(`{"event":"detection.failed"}`)))
}

func TestSubscribed(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		event  string
		want   bool
	}{
		{name: "exact match", events: []string{"detection.completed"}, event: "detection.completed", want: true},
		{name: "wildcard", events: []string{"*"}, event: "detection.failed", want: true},
		{name: "not subscribed", events: []string{"detection.completed"}, event: "detection.failed", want: false},
		{name: "empty list", events: nil, event: "detection.completed", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, subscribed(tt.events, tt.event))
		})
	}
}

func TestWebhookDeliverTaskRoundTrip(t *testing.T) {
	task, err := NewWebhookDeliverTask("user-1", EventDetectionCompleted, "det-1",
		map[string]interface{}{"status": "completed"})
	require.NoError(t, err)
	require.Equal(t, WebhookDeliver, task.Type())

	var p WebhookDeliverPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	require.Equal(t, "user-1", p.UserID)
	require.Equal(t, "det-1", p.DetectionID)
	require.NotEmpty(t, p.TaskID)
}
