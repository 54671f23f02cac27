// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// webhook receiver and the device sync daemon. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Device holds the local device identity and its advertised endpoint.
	Device Device `envPrefix:"DEVICE_"`

	// Server holds network address and timeout settings for the webhook
	// receiver's HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Security holds the shared webhook secret used for HMAC signing and
	// verification of inbound and outbound webhook bodies.
	Security Security `envPrefix:"SECURITY_"`

	// Vault holds settings for the external vault CLI integration.
	Vault Vault `envPrefix:"VAULT_"`

	// Sync holds daemon settings: watched files, periodic interval, and
	// shutdown/notification timeouts.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds paths for the durable registry, status, and audit files.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Device identifies the local machine in the device registry.
type Device struct {
	// ID is the stable identifier of this device. When empty, an identifier
	// is derived from the hostname and a generated UUID at startup.
	// Env: DEVICE_ID
	ID string `env:"ID"`

	// Hostname overrides the OS-reported host name in registry records.
	// Env: DEVICE_HOSTNAME
	Hostname string `env:"HOSTNAME"`

	// SyncEndpoint is the externally reachable URL of this device's webhook
	// receiver (e.g. "http://host:9090/sync"). Empty means pull-only.
	// Env: DEVICE_SYNC_ENDPOINT
	SyncEndpoint string `env:"SYNC_ENDPOINT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Security groups secrets used for webhook authentication.
type Security struct {
	// WebhookSecret is the shared secret for HMAC-SHA256 webhook signatures.
	// When empty, signature verification is skipped and a warning is logged
	// on every unverified request.
	// Env: SECURITY_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

// Vault holds settings for the external vault CLI.
type Vault struct {
	// Binary is the vault CLI executable name or path.
	// Env: VAULT_BINARY
	Binary string `env:"BINARY"`

	// Account is the vault account name expected in the CLI's account list;
	// used by the authentication liveness probe.
	// Env: VAULT_ACCOUNT
	Account string `env:"ACCOUNT"`

	// SecretsVault is the named vault that holds the synchronized secret
	// documents.
	// Env: VAULT_SECRETS_VAULT
	SecretsVault string `env:"SECRETS_VAULT"`

	// CLITimeout bounds every vault CLI invocation (e.g. "30s"). A hung CLI
	// process is killed when the timeout elapses.
	// Env: VAULT_CLI_TIMEOUT
	CLITimeout time.Duration `env:"CLI_TIMEOUT"`

	// ConflictMarker is the stderr substring that identifies an
	// "already exists" create failure, triggering the edit fallback.
	// Matched case-insensitively.
	// Env: VAULT_CONFLICT_MARKER
	ConflictMarker string `env:"CONFLICT_MARKER"`
}

// Sync holds daemon-side synchronization settings.
type Sync struct {
	// Interval is the fixed period of the catch-up sync cycle (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// WatchFiles is the explicit allow-list of secret-bearing files the
	// daemon watches. Never a directory or glob.
	// Env: SYNC_WATCH_FILES (comma-separated)
	WatchFiles []string `env:"WATCH_FILES"`

	// NotifyTimeout bounds each outbound peer notification (e.g. "10s").
	// Env: SYNC_NOTIFY_TIMEOUT
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT"`

	// ShutdownTimeout bounds how long the daemon waits for in-flight work
	// during graceful shutdown (e.g. "30s").
	// Env: SYNC_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage holds paths of the durable state files.
type Storage struct {
	// RegistryPath is the device registry JSON file.
	// Env: STORAGE_REGISTRY_PATH
	RegistryPath string `env:"REGISTRY_PATH"`

	// StatusPath is the sync status JSON file.
	// Env: STORAGE_STATUS_PATH
	StatusPath string `env:"STATUS_PATH"`

	// AuditLogPath is the append-only JSONL audit log. Empty disables the
	// audit log.
	// Env: STORAGE_AUDIT_LOG_PATH
	AuditLogPath string `env:"AUDIT_LOG_PATH"`
}

// Defaults applied during validation for fields left unset by all sources.
const (
	DefaultHTTPAddress     = "0.0.0.0:9090"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultVaultBinary     = "op"
	DefaultSecretsVault    = "secrets"
	DefaultCLITimeout      = 30 * time.Second
	DefaultConflictMarker  = "already exists"
	DefaultSyncInterval    = 5 * time.Minute
	DefaultNotifyTimeout   = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRegistryPath    = "devices.json"
	DefaultStatusPath      = "sync-status.json"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win; later sources fill gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
