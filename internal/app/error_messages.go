// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// webhook receiver's handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgUnknownRoute is returned for requests that match no registered
	// route.
	MsgUnknownRoute = "unknown route"

	// MsgInvalidSignature is returned when the X-Signature header does not
	// match the HMAC-SHA256 digest of the request body.
	MsgInvalidSignature = "invalid webhook signature"

	// MsgNoSyncYet is returned by the status endpoint before any sync
	// attempt has been recorded.
	MsgNoSyncYet = "no sync has run yet"

	// MsgFailedToLoadStatus is returned when the status record exists but
	// cannot be read or decoded.
	MsgFailedToLoadStatus = "failed to load sync status"

	// MsgUnrecognizedSyncPayload is returned when a POST /sync body matches
	// neither a peer push notification nor a manual sync request.
	MsgUnrecognizedSyncPayload = "unrecognized sync payload"

	// MsgNotABuildEvent is returned when the CI webhook path receives a
	// payload that is not a build event; the request is acknowledged and
	// ignored.
	MsgNotABuildEvent = "not a build event"
)
