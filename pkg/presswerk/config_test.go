package presswerk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ServerPort != 631 {
		t.Errorf("default port = %d, want 631", cfg.ServerPort)
	}
	if !cfg.ServerRequireTLS || !cfg.AuditEnabled || !cfg.EncryptionEnabled {
		t.Errorf("security defaults must be on: %+v", cfg)
	}
	if cfg.AutoAcceptNetworkJobs {
		t.Error("network jobs must be held for review by default")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty path must return the defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presswerk.yaml")
	data := "server_port: 6310\nauto_start_server: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerPort != 6310 {
		t.Errorf("port = %d, want 6310", cfg.ServerPort)
	}
	if !cfg.AutoStartServer {
		t.Error("auto_start_server override lost")
	}
	// Untouched keys keep their defaults.
	if !cfg.ServerRequireTLS {
		t.Error("require_tls default lost")
	}

	rec := cfg.ServerConfigRecord()
	if rec.Port != 6310 || !rec.RequireTLS {
		t.Errorf("server record = %+v", rec)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file did not error")
	}
}
