// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"

	"github.com/opsforge/secretsync/models"
)

// SecretStore is the contract every vault backend must satisfy.
//
// All operations are synchronous and non-retrying; retry policy belongs to
// the caller (the periodic sync cycle is the convergence mechanism). Every
// operation honors ctx cancellation and is bounded by the backend's
// configured timeout.
type SecretStore interface {
	// Resolve reads one secret value addressed by ref. The value is the
	// CLI's stdout with surrounding whitespace trimmed. Returns
	// [ErrSecretNotFound] when the CLI exits non-zero or prints nothing.
	Resolve(ctx context.Context, ref models.SecretReference) (string, error)

	// Store creates or updates the document named ref.Item inside ref.Vault
	// with the given content (ref.Field is not used for document writes).
	// The operation is idempotent: create is attempted first, and an
	// already-exists conflict falls back to an in-place edit. Returns
	// [ErrSecretWriteFailed] on any other failure.
	Store(ctx context.Context, ref models.SecretReference, content []byte) error

	// IsAuthenticated probes the CLI session. It returns nil when the
	// configured account is signed in and [ErrNotAuthenticated] otherwise.
	// The result is never cached; every call probes the CLI again.
	IsAuthenticated(ctx context.Context) error
}
