package cms_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cms "github.com/goliatone/go-filecms"
)

func TestDefaultConfigServesProductionLocations(t *testing.T) {
	cfg := cms.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.IsTest() {
		t.Fatal("expected production mode by default")
	}
	if cfg.DataDir() != "data" {
		t.Fatalf("expected data dir %q, got %q", "data", cfg.DataDir())
	}
	if cfg.CredentialsPath() != "users.yml" {
		t.Fatalf("expected credentials %q, got %q", "users.yml", cfg.CredentialsPath())
	}
}

func TestConfigValidateSessionStoreUnknown(t *testing.T) {
	cfg := cms.DefaultConfig()
	cfg.Session.Store = "redis"

	if err := cfg.Validate(); !errors.Is(err, cms.ErrSessionStoreUnknown) {
		t.Fatalf("expected ErrSessionStoreUnknown, got %v", err)
	}
}

func TestConfigValidateLoggingProviderUnknown(t *testing.T) {
	cfg := cms.DefaultConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, cms.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestLoadConfigSwitchesToTestLocations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "filecms.yaml")
	body := []byte("mode: test\nstorage:\n  test_data_dir: fixtures/data\ncredentials:\n  test_path: fixtures/users.yml\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := cms.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.IsTest() {
		t.Fatalf("expected test mode, got %q", cfg.Mode)
	}
	if cfg.DataDir() != "fixtures/data" {
		t.Fatalf("expected fixtures/data, got %q", cfg.DataDir())
	}
	if cfg.CredentialsPath() != "fixtures/users.yml" {
		t.Fatalf("expected fixtures/users.yml, got %q", cfg.CredentialsPath())
	}
}
