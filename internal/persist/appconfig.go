// Package persist reads and writes the on-disk state of Yantra Daan: the
// application config, the preference key/value file and backups.
package persist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/yantradaan/yantra-daan/internal/model"
)

// ConfigPathEnv overrides DefaultConfigPath when set.
const ConfigPathEnv = "YANTRA_DAAN_CONFIG"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.yantra-daan/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".yantra-daan")
}

// DefaultConfigPath returns the config file path, honouring ConfigPathEnv.
func DefaultConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnv)); p != "" {
		return filepath.Clean(p)
	}
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// PreferencesPath returns where the preference file lives for a config
// loaded from configPath.
func PreferencesPath(configPath string, config model.AppConfig) string {
	if config.PreferencesFile != "" {
		return config.PreferencesFile
	}
	return filepath.Join(filepath.Dir(configPath), "preferences.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields missing from the file take their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return model.AppConfig{}, err
	}
	return config, nil
}
