package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yantradaan/yantra-daan/internal/model"
	"github.com/yantradaan/yantra-daan/internal/theme"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.StorageKey = "donor-portal-theme"
	cfg.DefaultTheme = theme.PreferenceDark
	cfg.LogLevel = "debug"

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded != cfg {
		t.Errorf("round trip mismatch:\n got=%+v\nwant=%+v", loaded, cfg)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg != model.DefaultAppConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadAppConfigPartialFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"default_theme":"light"}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.DefaultTheme != theme.PreferenceLight {
		t.Errorf("expected default_theme=light, got %s", cfg.DefaultTheme)
	}
	if cfg.StorageKey != theme.DefaultStorageKey {
		t.Errorf("expected default storage key, got %s", cfg.StorageKey)
	}
}

func TestLoadAppConfigRejectsUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{"default_theme":"sepia"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected validation error for unknown theme")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestDefaultConfigPathHonoursEnv(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "alt", "config.json")
	t.Setenv(ConfigPathEnv, custom)

	if got := DefaultConfigPath(); got != custom {
		t.Errorf("expected %s, got %s", custom, got)
	}

	t.Setenv(ConfigPathEnv, "")
	if got := DefaultConfigPath(); filepath.Base(got) != "config.json" || filepath.Base(filepath.Dir(got)) != ".yantra-daan" {
		t.Errorf("unexpected default path %s", got)
	}
}

func TestPreferencesPath(t *testing.T) {
	cfg := model.DefaultAppConfig()
	if got := PreferencesPath("/etc/yd/config.json", cfg); got != filepath.Join("/etc/yd", "preferences.json") {
		t.Errorf("unexpected derived path %s", got)
	}

	cfg.PreferencesFile = "/var/lib/yd/prefs.json"
	if got := PreferencesPath("/etc/yd/config.json", cfg); got != cfg.PreferencesFile {
		t.Errorf("explicit preferences_file ignored, got %s", got)
	}
}
