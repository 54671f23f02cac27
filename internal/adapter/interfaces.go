// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains outbound integrations with remote peers.
//
// The only adapter today is the HTTP peer notifier used by the sync daemon's
// fan-out; it is kept behind an interface so fan-out logic can be tested
// against fakes.
package adapter

import (
	"context"

	"github.com/opsforge/secretsync/models"
)

// PeerNotifier delivers one push notification to one peer's sync endpoint.
//
// Delivery is at-most-once: implementations must not retry. A non-2xx status
// or transport error is reported as an error and the caller decides whether
// it matters (fan-out treats it as an expected, self-healing condition).
type PeerNotifier interface {
	Notify(ctx context.Context, peer models.Device, notification models.PushNotification) error
}
