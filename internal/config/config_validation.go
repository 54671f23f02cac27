// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants and fills in documented defaults for fields left
// unset by every source.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Vault.Binary == "" {
		cfg.Vault.Binary = DefaultVaultBinary
	}
	if cfg.Vault.SecretsVault == "" {
		cfg.Vault.SecretsVault = DefaultSecretsVault
	}
	if cfg.Vault.CLITimeout <= 0 {
		cfg.Vault.CLITimeout = DefaultCLITimeout
	}
	if cfg.Vault.ConflictMarker == "" {
		cfg.Vault.ConflictMarker = DefaultConflictMarker
	}

	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.NotifyTimeout <= 0 {
		cfg.Sync.NotifyTimeout = DefaultNotifyTimeout
	}
	if cfg.Sync.ShutdownTimeout <= 0 {
		cfg.Sync.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Storage.RegistryPath == "" {
		cfg.Storage.RegistryPath = DefaultRegistryPath
	}
	if cfg.Storage.StatusPath == "" {
		cfg.Storage.StatusPath = DefaultStatusPath
	}

	for _, file := range cfg.Sync.WatchFiles {
		if file == "" {
			return ErrInvalidSyncConfigs
		}
	}

	return nil
}
