package model

import (
	"fmt"

	"github.com/yantradaan/yantra-daan/internal/theme"
)

// Signal sources selectable in the config.
const (
	SignalAuto     = "auto"
	SignalPortal   = "portal"
	SignalTerminal = "terminal"
	SignalNone     = "none"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var signalKinds = map[string]bool{SignalAuto: true, SignalPortal: true, SignalTerminal: true, SignalNone: true}

// AppConfig holds application-wide theme settings.
type AppConfig struct {
	StorageKey   string           `json:"storage_key"`
	DefaultTheme theme.Preference `json:"default_theme"`

	// PreferencesFile is the JSON preference store. Empty means next to the config file.
	PreferencesFile string `json:"preferences_file"`

	LogLevel string `json:"log_level"`
	Signal   string `json:"signal"` // auto, portal, terminal or none
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		StorageKey:   theme.DefaultStorageKey,
		DefaultTheme: theme.PreferenceSystem,
		LogLevel:     "warn",
		Signal:       SignalAuto,
	}
}

// WithDefaults fills empty fields from DefaultAppConfig.
func (c AppConfig) WithDefaults() AppConfig {
	defaults := DefaultAppConfig()
	if c.StorageKey == "" {
		c.StorageKey = defaults.StorageKey
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = defaults.DefaultTheme
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Signal == "" {
		c.Signal = defaults.Signal
	}
	return c
}

// Validate checks every field.
func (c AppConfig) Validate() error {
	if c.StorageKey == "" {
		return fmt.Errorf("storage_key must not be empty")
	}
	if !c.DefaultTheme.Valid() {
		return fmt.Errorf("default_theme %q must be one of light, dark, system", c.DefaultTheme)
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel)
	}
	if !signalKinds[c.Signal] {
		return fmt.Errorf("signal %q must be one of auto, portal, terminal, none", c.Signal)
	}
	return nil
}

// ManagerOptions translates the config into theme.Manager options.
func (c AppConfig) ManagerOptions() []theme.Option {
	return []theme.Option{
		theme.WithStorageKey(c.StorageKey),
		theme.WithDefault(c.DefaultTheme),
	}
}
