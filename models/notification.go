// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PushNotification is the JSON body POSTed to a peer's sync endpoint after a
// successful vault push. Delivery is best-effort: only the HTTP status of the
// response is inspected, never the body.
type PushNotification struct {
	// Source is the device ID of the sender.
	Source string `json:"source"`

	// DeviceID is the ID of the peer being notified.
	DeviceID string `json:"device_id"`

	// ChangedFile is the watched file whose content was pushed.
	ChangedFile string `json:"changed_file,omitempty"`

	// Timestamp is when the push completed.
	Timestamp time.Time `json:"timestamp"`
}
