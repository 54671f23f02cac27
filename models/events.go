// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// WebhookEvent is the closed set of inbound webhook payload shapes.
//
// Raw JSON bodies are classified into exactly one of [BuildEvent],
// [PushEvent], [ManualSyncEvent], or [UnknownEvent] at the HTTP boundary,
// so downstream sync logic never inspects raw object shapes.
type WebhookEvent interface {
	webhookEvent()
}

// BuildEvent signals that the CI platform started or retried a build; the
// receiver reacts by pulling the latest secrets from the vault.
type BuildEvent struct {
	// Action is the CI event action (e.g. "requested", "rerequested").
	Action string `json:"action"`

	// Workflow is the workflow name, when the CI platform provides one.
	Workflow string `json:"workflow,omitempty"`

	// Repository is the source repository identifier.
	Repository string `json:"repository,omitempty"`
}

// PushEvent signals that a peer device pushed changed secret content into
// the vault and is notifying this device to refresh.
type PushEvent struct {
	// Source is the device ID of the pushing peer.
	Source string `json:"source"`

	// DeviceID is the intended recipient device.
	DeviceID string `json:"device_id"`

	// ChangedFile is the watched file whose content was pushed.
	ChangedFile string `json:"changed_file,omitempty"`

	// Timestamp is when the peer performed the push.
	Timestamp time.Time `json:"timestamp"`
}

// ManualSyncEvent is an operator-triggered sync request.
type ManualSyncEvent struct {
	// Source identifies who requested the sync (e.g. "operator", a tool name).
	Source string `json:"source"`

	// DeviceID is the device expected to perform the sync.
	DeviceID string `json:"device_id,omitempty"`
}

// UnknownEvent wraps a payload that matched none of the known shapes.
// It carries the raw body for logging; it never triggers a sync.
type UnknownEvent struct {
	Raw json.RawMessage `json:"-"`
}

func (BuildEvent) webhookEvent()      {}
func (PushEvent) webhookEvent()       {}
func (ManualSyncEvent) webhookEvent() {}
func (UnknownEvent) webhookEvent()    {}
