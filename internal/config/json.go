package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Device struct {
		ID           string `json:"id"`
		Hostname     string `json:"hostname"`
		SyncEndpoint string `json:"sync_endpoint"`
	} `json:"device,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Security struct {
		WebhookSecret string `json:"webhook_secret"`
	} `json:"security,omitempty"`

	Vault struct {
		Binary         string   `json:"binary"`
		Account        string   `json:"account"`
		SecretsVault   string   `json:"secrets_vault"`
		CLITimeout     Duration `json:"cli_timeout"`
		ConflictMarker string   `json:"conflict_marker"`
	} `json:"vault,omitempty"`

	Sync struct {
		Interval        Duration `json:"interval"`
		WatchFiles      []string `json:"watch_files"`
		NotifyTimeout   Duration `json:"notify_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"sync,omitempty"`

	Storage struct {
		RegistryPath string `json:"registry_path"`
		StatusPath   string `json:"status_path"`
		AuditLogPath string `json:"audit_log_path"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Device: Device{
			ID:           jsonCfg.Device.ID,
			Hostname:     jsonCfg.Device.Hostname,
			SyncEndpoint: jsonCfg.Device.SyncEndpoint,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Security: Security{
			WebhookSecret: jsonCfg.Security.WebhookSecret,
		},
		Vault: Vault{
			Binary:         jsonCfg.Vault.Binary,
			Account:        jsonCfg.Vault.Account,
			SecretsVault:   jsonCfg.Vault.SecretsVault,
			CLITimeout:     time.Duration(jsonCfg.Vault.CLITimeout),
			ConflictMarker: jsonCfg.Vault.ConflictMarker,
		},
		Sync: Sync{
			Interval:        time.Duration(jsonCfg.Sync.Interval),
			WatchFiles:      jsonCfg.Sync.WatchFiles,
			NotifyTimeout:   time.Duration(jsonCfg.Sync.NotifyTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Sync.ShutdownTimeout),
		},
		Storage: Storage{
			RegistryPath: jsonCfg.Storage.RegistryPath,
			StatusPath:   jsonCfg.Storage.StatusPath,
			AuditLogPath: jsonCfg.Storage.AuditLogPath,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
