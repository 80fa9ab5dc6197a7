package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/yantradaan/yantra-daan/internal/persist"
	apptheme "github.com/yantradaan/yantra-daan/internal/theme"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.DefaultTheme = apptheme.Preference(selected)
	})
	themeSelect.SetSelected(string(cfg.DefaultTheme))

	levelSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(selected string) {
		cfg.LogLevel = selected
	})
	levelSelect.SetSelected(cfg.LogLevel)

	keyEntry := widget.NewEntry()
	keyEntry.SetText(cfg.StorageKey)
	keyEntry.OnChanged = func(text string) {
		cfg.StorageKey = strings.TrimSpace(text)
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Default Theme", themeSelect),
		widget.NewFormItem("Log Level", levelSelect),
		widget.NewFormItem("Storage Key", keyEntry),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if err := cfg.Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.config = cfg
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved",
					"Application settings have been saved.\nStorage key and log level changes apply on restart.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(420, 260))
	d.Show()
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := a.exportData(path); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("yantra-daan-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and theme preference.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					createdAt, err := a.importData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", createdAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, theme preference) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

func (a *App) exportData(path string) error {
	prefs := map[string]string{
		a.manager.StorageKey(): string(a.manager.Preference()),
	}
	return persist.ExportAllData(path, a.config, prefs)
}

// importData replaces the config and applies the backed up preference
// stored under the running manager's key.
func (a *App) importData(path string) (string, error) {
	backup, err := persist.ImportAllData(path)
	if err != nil {
		return "", err
	}
	a.config = backup.Config
	if err := a.saveConfig(); err != nil {
		return "", fmt.Errorf("failed to save imported settings: %w", err)
	}
	if v, ok := backup.Preferences[a.manager.StorageKey()]; ok {
		p, err := apptheme.ParsePreference(v)
		if err != nil {
			return "", fmt.Errorf("imported theme preference: %w", err)
		}
		a.choose(p, "Import")
	}
	return backup.CreatedAt, nil
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return persist.SaveAppConfig(a.configPath, a.config)
}
