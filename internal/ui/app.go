package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/yantradaan/yantra-daan/internal/export"
	"github.com/yantradaan/yantra-daan/internal/model"
	apptheme "github.com/yantradaan/yantra-daan/internal/theme"
)

var preferenceLabels = map[apptheme.Preference]string{
	apptheme.PreferenceSystem: "System",
	apptheme.PreferenceLight:  "Light",
	apptheme.PreferenceDark:   "Dark",
}

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	logger     *zap.Logger
	manager    *apptheme.Manager
	history    *History

	// UI references for dynamic updates
	choice    *widget.RadioGroup
	toggleBtn *ttwidget.Button
	status    *widget.Label

	unsubscribe func()
}

// NewApp builds the theme manager on top of the app's preferences and
// settings and applies the initial theme.
func NewApp(app fyne.App, window fyne.Window, config model.AppConfig, configPath string, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		app:        app,
		window:     window,
		config:     config,
		configPath: configPath,
		logger:     logger,
		history:    NewHistory(),
	}
	opts := append(config.ManagerOptions(), apptheme.WithLogger(logger))
	a.manager = apptheme.New(
		NewPreferencesStore(app.Preferences()),
		NewSettingsSignal(app.Settings()),
		NewAppTarget(app),
		opts...,
	)
	return a
}

// Manager exposes the theme manager.
func (a *App) Manager() *apptheme.Manager {
	return a.manager
}

// Close detaches the UI and releases the manager.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.manager.Close()
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import / Export Data...", func() {
			a.showImportExportDialog()
		}),
		fyne.NewMenuItem("Export Palette PDF...", func() {
			a.exportPalette()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo Theme Change", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo Theme Change", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
	)

	// View Menu
	viewItems := make([]*fyne.MenuItem, 0, len(apptheme.Preferences)+2)
	for _, p := range apptheme.Preferences {
		viewItems = append(viewItems, fyne.NewMenuItem(preferenceLabels[p]+" Theme", func() {
			a.choose(p, preferenceLabels[p])
		}))
	}
	viewItems = append(viewItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Light/Dark", func() {
			a.toggle()
		}),
	)
	viewMenu := fyne.NewMenu("View", viewItems...)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Yantra Daan",
		"Yantra Daan Theme Manager\n\n"+
			"Resolves, persists and applies the light/dark preference,\n"+
			"following the operating system when set to System.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	options := make([]string, 0, len(apptheme.Preferences))
	for _, p := range apptheme.Preferences {
		options = append(options, preferenceLabels[p])
	}
	a.choice = widget.NewRadioGroup(options, a.onChoice)
	a.choice.Horizontal = true
	a.choice.Required = true

	a.toggleBtn = newButtonWithTooltip("Toggle", theme.ColorPaletteIcon(),
		"Switch between light and dark", a.toggle)
	a.status = widget.NewLabel("")

	a.refresh(a.manager.State())
	a.unsubscribe = a.manager.Subscribe(a.refresh)

	return container.NewPadded(container.NewVBox(
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.choice,
		container.NewHBox(a.toggleBtn),
		widget.NewSeparator(),
		a.status,
	))
}

// refresh runs inside manager notifications, so it must not call mutators.
func (a *App) refresh(s apptheme.State) {
	a.choice.SetSelected(preferenceLabels[s.Preference])
	a.status.SetText(statusText(s))
}

func statusText(s apptheme.State) string {
	if s.Preference == apptheme.PreferenceSystem {
		return fmt.Sprintf("Active theme: %s (following system)", s.Resolved)
	}
	return fmt.Sprintf("Active theme: %s", s.Resolved)
}

// onChoice also fires when refresh syncs the radio group; the preference
// already matches then, so nothing is changed.
func (a *App) onChoice(label string) {
	for p, l := range preferenceLabels {
		if l == label && p != a.manager.Preference() {
			a.choose(p, label)
			return
		}
	}
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) choose(p apptheme.Preference, label string) {
	prev := a.manager.Preference()
	if p == prev {
		return
	}
	if err := a.manager.SetPreference(p); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.history.Push(Snapshot{Preference: prev, Label: label})
}

func (a *App) toggle() {
	prev := a.manager.Preference()
	a.manager.Toggle()
	a.history.Push(Snapshot{Preference: prev, Label: "Toggle"})
}

func (a *App) undo() {
	s, ok := a.history.Undo(Snapshot{Preference: a.manager.Preference(), Label: "Undo"})
	if !ok {
		return
	}
	if err := a.manager.SetPreference(s.Preference); err != nil {
		a.logger.Warn("undo theme change", zap.Error(err))
	}
}

func (a *App) redo() {
	s, ok := a.history.Redo(Snapshot{Preference: a.manager.Preference(), Label: "Redo"})
	if !ok {
		return
	}
	if err := a.manager.SetPreference(s.Preference); err != nil {
		a.logger.Warn("redo theme change", zap.Error(err))
	}
}

func (a *App) exportPalette() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportPalettePDF(path, a.manager.Resolved()); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Palette sheet saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName("yantra-daan-palette.pdf")
	d.Show()
}
