// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package daemon implements the device sync daemon's application runtime.
//
// It wires the vault adapter, the durable stores, the file watcher, and the
// periodic catch-up job into a single process lifecycle with graceful,
// bounded shutdown.
package daemon
