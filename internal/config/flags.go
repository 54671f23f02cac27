package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-device-id stable device identifier
//	-hostname hostname override for registry records
//	-sync-endpoint advertised webhook receiver URL
//	-webhook-secret shared HMAC secret for webhook signatures
//	-vault-binary vault CLI executable
//	-vault-account vault account name for the auth probe
//	-secrets-vault vault holding synchronized secret documents
//	-vault-timeout vault CLI timeout (e.g., "30s")
//	-watch comma-separated list of watched secret files
//	-interval periodic sync interval (e.g., "5m")
//	-registry device registry file path
//	-status sync status file path
//	-audit-log append-only audit log path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var listenAddress NetAddress
	var deviceID string
	var hostname string
	var syncEndpoint string
	var webhookSecret string
	var vaultBinary string
	var vaultAccount string
	var secretsVault string
	var vaultTimeout time.Duration
	var watchFiles string
	var syncInterval time.Duration
	var registryPath string
	var statusPath string
	var auditLogPath string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&listenAddress, "a", "Net address host:port")
	flag.StringVar(&deviceID, "device-id", "", "Stable device identifier")
	flag.StringVar(&hostname, "hostname", "", "Hostname override")
	flag.StringVar(&syncEndpoint, "sync-endpoint", "", "Advertised webhook receiver URL")
	flag.StringVar(&webhookSecret, "webhook-secret", "", "Shared webhook HMAC secret")
	flag.StringVar(&vaultBinary, "vault-binary", "", "Vault CLI executable")
	flag.StringVar(&vaultAccount, "vault-account", "", "Vault account name")
	flag.StringVar(&secretsVault, "secrets-vault", "", "Vault holding synchronized secret documents")
	flag.DurationVar(&vaultTimeout, "vault-timeout", 0, "Vault CLI timeout (e.g., 30s)")
	flag.StringVar(&watchFiles, "watch", "", "Comma-separated watched secret files")
	flag.DurationVar(&syncInterval, "interval", 0, "Periodic sync interval (e.g., 5m)")
	flag.StringVar(&registryPath, "registry", "", "Device registry file path")
	flag.StringVar(&statusPath, "status", "", "Sync status file path")
	flag.StringVar(&auditLogPath, "audit-log", "", "Audit log file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Device: Device{
			ID:           deviceID,
			Hostname:     hostname,
			SyncEndpoint: syncEndpoint,
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Security: Security{
			WebhookSecret: webhookSecret,
		},
		Vault: Vault{
			Binary:       vaultBinary,
			Account:      vaultAccount,
			SecretsVault: secretsVault,
			CLITimeout:   vaultTimeout,
		},
		Sync: Sync{
			Interval:   syncInterval,
			WatchFiles: splitWatchFiles(watchFiles),
		},
		Storage: Storage{
			RegistryPath: registryPath,
			StatusPath:   statusPath,
			AuditLogPath: auditLogPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func splitWatchFiles(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	files := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			files = append(files, p)
		}
	}

	return files
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
