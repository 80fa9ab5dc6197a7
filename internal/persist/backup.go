package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yantradaan/yantra-daan/internal/model"
)

// ErrInvalidBackup is returned when a backup file lacks its version.
var ErrInvalidBackup = errors.New("invalid backup file")

const backupVersion = "1.0.0"

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version     string            `json:"version"`
	CreatedAt   string            `json:"created_at"`
	Config      model.AppConfig   `json:"config"`
	Preferences map[string]string `json:"preferences"`
}

// ExportAllData exports the config and the stored preferences to a single
// JSON file at the specified path.
func ExportAllData(exportPath string, config model.AppConfig, preferences map[string]string) error {
	if preferences == nil {
		preferences = map[string]string{}
	}
	backup := BackupData{
		Version:     backupVersion,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Config:      config,
		Preferences: preferences,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported config and preferences.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("%w: missing version field", ErrInvalidBackup)
	}
	backup.Config = backup.Config.WithDefaults()
	if err := backup.Config.Validate(); err != nil {
		return BackupData{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if backup.Preferences == nil {
		backup.Preferences = map[string]string{}
	}
	return backup, nil
}
