// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package daemon

// Daemon defines the minimal lifecycle contract for runnable daemon
// applications.
type Daemon interface {
	// Run starts the daemon and blocks until a termination signal arrives
	// and shutdown completes.
	Run() error
}
