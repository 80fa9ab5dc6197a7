// Yantra Daan — desktop theme preference manager
//
// A cross-platform desktop window for choosing the light, dark or system
// theme. The choice is stored in the Fyne app preferences and the window
// follows the operating system colour scheme while set to System.
//
// Build:
//   go build -o yantra-daan ./cmd/yantra-daan
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/yantradaan/yantra-daan/internal/logging"
	"github.com/yantradaan/yantra-daan/internal/persist"
	"github.com/yantradaan/yantra-daan/internal/ui"
)

func main() {
	configPath := persist.DefaultConfigPath()
	config, err := persist.LoadAppConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yantra-daan: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yantra-daan: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	application := app.NewWithID("com.yantradaan.theme")
	window := application.NewWindow("Yantra Daan — Theme")

	appUI := ui.NewApp(application, window, config, configPath, logger)
	application.Lifecycle().SetOnStopped(appUI.Close)
	logger.Info("theme manager started",
		zap.String("config", configPath),
		zap.String("preference", string(appUI.Manager().Preference())))

	appUI.SetupMenus()
	window.SetContent(ui.WithToolTips(appUI.Build(), window))
	window.Resize(fyne.NewSize(480, 220))
	window.CenterOnScreen()
	window.ShowAndRun()
}
