// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"time"

	"github.com/opsforge/secretsync/models"
)

// decodeWebhookEvent classifies a raw webhook body into the closed set of
// [models.WebhookEvent] variants before any sync logic runs.
//
// Classification rules, checked in order:
//   - an "action" field marks a CI build event;
//   - a "source" together with a "timestamp" marks a peer push notification;
//   - a "source" alone marks a manual sync request;
//   - anything else (including non-object bodies) is unknown.
func decodeWebhookEvent(body []byte) models.WebhookEvent {
	var probe struct {
		Action    *string    `json:"action"`
		Source    *string    `json:"source"`
		Timestamp *time.Time `json:"timestamp"`
	}

	if err := json.Unmarshal(body, &probe); err != nil {
		return models.UnknownEvent{Raw: body}
	}

	switch {
	case probe.Action != nil:
		var event models.BuildEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return models.UnknownEvent{Raw: body}
		}
		return event

	case probe.Source != nil && probe.Timestamp != nil:
		var event models.PushEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return models.UnknownEvent{Raw: body}
		}
		return event

	case probe.Source != nil:
		var event models.ManualSyncEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return models.UnknownEvent{Raw: body}
		}
		return event

	default:
		return models.UnknownEvent{Raw: body}
	}
}
