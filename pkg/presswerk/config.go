package presswerk

import (
	"github.com/spf13/viper"

	"github.com/presswerk/presswerk-go/pkg/presswerk/abi"
)

// AppConfig carries the persistent application settings shared with the
// embedded print server and the native shells.
type AppConfig struct {
	// ServerPort is the IPP print server port (IANA default 631).
	ServerPort uint16 `mapstructure:"server_port"`
	// ServerRequireTLS requires TLS on incoming print connections.
	ServerRequireTLS bool `mapstructure:"server_require_tls"`
	// AutoStartServer starts the print server on launch.
	AutoStartServer bool `mapstructure:"auto_start_server"`
	// AutoAcceptNetworkJobs releases network jobs immediately; when false
	// they are created Held for review.
	AutoAcceptNetworkJobs bool `mapstructure:"auto_accept_network_jobs"`
	// AuditEnabled records security-relevant operations in the audit log.
	AuditEnabled bool `mapstructure:"audit_enabled"`
	// EncryptionEnabled encrypts local job storage.
	EncryptionEnabled bool `mapstructure:"encryption_enabled"`
	// PrintTimeoutSecs bounds print submissions.
	PrintTimeoutSecs uint64 `mapstructure:"print_timeout_secs"`
	// QueryTimeoutSecs bounds attribute queries.
	QueryTimeoutSecs uint64 `mapstructure:"query_timeout_secs"`
}

// DefaultConfig returns the shipped defaults: TLS required, audit and
// encryption on, network jobs held for review.
func DefaultConfig() AppConfig {
	return AppConfig{
		ServerPort:        631,
		ServerRequireTLS:  true,
		AuditEnabled:      true,
		EncryptionEnabled: true,
		PrintTimeoutSecs:  60,
		QueryTimeoutSecs:  15,
	}
}

// LoadConfig reads settings from the given file, layering them over the
// defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (AppConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("server_port", cfg.ServerPort)
	v.SetDefault("server_require_tls", cfg.ServerRequireTLS)
	v.SetDefault("auto_start_server", cfg.AutoStartServer)
	v.SetDefault("auto_accept_network_jobs", cfg.AutoAcceptNetworkJobs)
	v.SetDefault("audit_enabled", cfg.AuditEnabled)
	v.SetDefault("encryption_enabled", cfg.EncryptionEnabled)
	v.SetDefault("print_timeout_secs", cfg.PrintTimeoutSecs)
	v.SetDefault("query_timeout_secs", cfg.QueryTimeoutSecs)

	if err := v.ReadInConfig(); err != nil {
		return AppConfig{}, &Error{Op: "LoadConfig", Err: err}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, &Error{Op: "LoadConfig", Err: err}
	}
	return cfg, nil
}

// ServerConfigRecord returns the 4-byte boundary record for the server
// settings.
func (c AppConfig) ServerConfigRecord() abi.ServerConfigRecord {
	return abi.ServerConfigRecord{Port: c.ServerPort, RequireTLS: c.ServerRequireTLS}
}
