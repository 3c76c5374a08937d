package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("Expected batch size %d, got %d", DefaultBatchSize, cfg.BatchSize)
	}
	if cfg.FolderPrefix != DefaultFolderPrefix {
		t.Errorf("Expected prefix %q, got %q", DefaultFolderPrefix, cfg.FolderPrefix)
	}
	if cfg.TextExt != DefaultTextExt || cfg.ImageExt != DefaultImageExt {
		t.Errorf("Unexpected default extensions: %q, %q", cfg.TextExt, cfg.ImageExt)
	}
	if cfg.CombinedName != DefaultCombinedName {
		t.Errorf("Expected combined name %q, got %q", DefaultCombinedName, cfg.CombinedName)
	}
	if cfg.TransferMode != DefaultTransferMode {
		t.Errorf("Expected transfer mode %q, got %q", DefaultTransferMode, cfg.TransferMode)
	}
}

func TestLoadFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"batch_size": 100, "folder_prefix": "Project"}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.BatchSize != 100 {
		t.Errorf("Expected batch size 100, got %d", cfg.BatchSize)
	}
	if cfg.FolderPrefix != "Project" {
		t.Errorf("Expected prefix Project, got %q", cfg.FolderPrefix)
	}

	// Unset fields are backfilled with defaults
	if cfg.TextExt != DefaultTextExt {
		t.Errorf("Expected default text ext, got %q", cfg.TextExt)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "batch_size: 50\ntransfer_mode: move\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.BatchSize != 50 {
		t.Errorf("Expected batch size 50, got %d", cfg.BatchSize)
	}
	if cfg.TransferMode != "move" {
		t.Errorf("Expected transfer mode move, got %q", cfg.TransferMode)
	}
}

func TestLoadFromFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Errorf("Expected error for invalid JSON config")
	}
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		path := filepath.Join(t.TempDir(), "config"+ext)

		cfg := New()
		cfg.BatchSize = 75
		cfg.FolderPrefix = "Archive"
		if err := cfg.SaveToFile(path); err != nil {
			t.Fatalf("SaveToFile(%s) failed: %v", ext, err)
		}

		loaded, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile(%s) failed: %v", ext, err)
		}
		if loaded.BatchSize != 75 || loaded.FolderPrefix != "Archive" {
			t.Errorf("Round trip through %s lost values: %+v", ext, loaded)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	cfg := New()
	cfg.BatchSize = 100
	cfg.FolderPrefix = "FromFile"
	cfg.TransferMode = "copy"

	t.Setenv(EnvBatchSize, "25")
	t.Setenv(EnvFolderPrefix, "FromEnv")
	t.Setenv(EnvTransferMode, "move")

	if got := cfg.GetBatchSize(); got != 25 {
		t.Errorf("Expected env batch size 25, got %d", got)
	}
	if got := cfg.GetFolderPrefix(); got != "FromEnv" {
		t.Errorf("Expected env prefix, got %q", got)
	}
	if got := cfg.GetTransferMode(); got != "move" {
		t.Errorf("Expected env transfer mode, got %q", got)
	}
}

func TestEnvInvalidBatchSizeIgnored(t *testing.T) {
	cfg := New()
	cfg.BatchSize = 100

	t.Setenv(EnvBatchSize, "not-a-number")

	if got := cfg.GetBatchSize(); got != 100 {
		t.Errorf("Expected config value 100 when env is unparseable, got %d", got)
	}
}

func TestAccessorsFallBackToDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetBatchSize(); got != DefaultBatchSize {
		t.Errorf("Expected default batch size, got %d", got)
	}
	if got := cfg.GetFolderPrefix(); got != DefaultFolderPrefix {
		t.Errorf("Expected default prefix, got %q", got)
	}
	if got := cfg.GetTransferMode(); got != DefaultTransferMode {
		t.Errorf("Expected default transfer mode, got %q", got)
	}
}
