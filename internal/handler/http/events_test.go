package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsforge/secretsync/models"
)

func TestDecodeWebhookEvent(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.WebhookEvent
	}{
		{
			name: "build event",
			body: `{"action":"requested","workflow":"deploy","repository":"opsforge/app"}`,
			want: models.BuildEvent{Action: "requested", Workflow: "deploy", Repository: "opsforge/app"},
		},
		{
			name: "build event wins over source",
			body: `{"action":"rerequested","source":"ci"}`,
			want: models.BuildEvent{Action: "rerequested"},
		},
		{
			name: "peer push notification",
			body: `{"source":"desktop-02","device_id":"laptop-01","changed_file":".env","timestamp":"2026-08-31T10:00:00Z"}`,
			want: models.PushEvent{
				Source:      "desktop-02",
				DeviceID:    "laptop-01",
				ChangedFile: ".env",
				Timestamp:   time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "manual sync request",
			body: `{"source":"operator"}`,
			want: models.ManualSyncEvent{Source: "operator"},
		},
		{
			name: "empty action still classifies as build",
			body: `{"action":""}`,
			want: models.BuildEvent{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, decodeWebhookEvent([]byte(test.body)))
		})
	}
}

func TestDecodeWebhookEvent_UnknownShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no recognizable fields", body: `{"foo":"bar"}`},
		{name: "empty object", body: `{}`},
		{name: "not json", body: `not json at all`},
		{name: "json array", body: `[1,2,3]`},
		{name: "empty body", body: ``},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			event := decodeWebhookEvent([]byte(test.body))

			unknown, ok := event.(models.UnknownEvent)
			require.True(t, ok, "expected UnknownEvent, got %T", event)
			assert.Equal(t, test.body, string(unknown.Raw))
		})
	}
}
