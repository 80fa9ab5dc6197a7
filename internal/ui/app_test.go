package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yantradaan/yantra-daan/internal/model"
	"github.com/yantradaan/yantra-daan/internal/persist"
	apptheme "github.com/yantradaan/yantra-daan/internal/theme"
)

func newTestApp(t *testing.T, def apptheme.Preference) *App {
	t.Helper()
	fa := test.NewTempApp(t)
	w := fa.NewWindow("Yantra Daan")
	cfg := model.DefaultAppConfig()
	cfg.DefaultTheme = def

	a := NewApp(fa, w, cfg, filepath.Join(t.TempDir(), "config.json"), zap.NewNop())
	w.SetContent(a.Build())
	t.Cleanup(a.Close)
	return a
}

func TestAppStartsWithDefault(t *testing.T) {
	a := newTestApp(t, apptheme.PreferenceDark)

	assert.Equal(t, "Dark", a.choice.Selected)
	assert.Equal(t, "Active theme: dark", a.status.Text)
	th, ok := a.app.Settings().Theme().(*YantraTheme)
	require.True(t, ok)
	assert.Equal(t, theme.VariantDark, th.Variant())
}

func TestAppToggleUpdatesWidgetsAndStorage(t *testing.T) {
	a := newTestApp(t, apptheme.PreferenceLight)

	test.Tap(a.toggleBtn)

	assert.Equal(t, apptheme.PreferenceDark, a.manager.Preference())
	assert.Equal(t, "Dark", a.choice.Selected)
	assert.Equal(t, "Active theme: dark", a.status.Text)
	assert.Equal(t, "dark", a.app.Preferences().String(a.manager.StorageKey()))
	th, ok := a.app.Settings().Theme().(*YantraTheme)
	require.True(t, ok)
	assert.Equal(t, theme.VariantDark, th.Variant())
}

func TestAppRadioChoiceWithUndoRedo(t *testing.T) {
	a := newTestApp(t, apptheme.PreferenceLight)

	a.choice.SetSelected("Dark")
	assert.Equal(t, apptheme.PreferenceDark, a.manager.Preference())

	a.undo()
	assert.Equal(t, apptheme.PreferenceLight, a.manager.Preference())
	assert.Equal(t, "Light", a.choice.Selected)

	a.redo()
	assert.Equal(t, apptheme.PreferenceDark, a.manager.Preference())

	a.redo()
	assert.Equal(t, apptheme.PreferenceDark, a.manager.Preference(), "nothing left to redo")
}

func TestAppSystemChoiceShowsFollowing(t *testing.T) {
	a := newTestApp(t, apptheme.PreferenceLight)

	a.choose(apptheme.PreferenceSystem, "System")
	assert.Equal(t, "System", a.choice.Selected)
	assert.Contains(t, a.status.Text, "following system")
}

func TestAppExportImportData(t *testing.T) {
	a := newTestApp(t, apptheme.PreferenceLight)
	a.choose(apptheme.PreferenceDark, "Dark")

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, a.exportData(path))

	backup, err := persist.ImportAllData(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", backup.Preferences[a.manager.StorageKey()])

	a.choose(apptheme.PreferenceLight, "Light")
	_, err = a.importData(path)
	require.NoError(t, err)
	assert.Equal(t, apptheme.PreferenceDark, a.manager.Preference())

	_, err = os.Stat(a.configPath)
	assert.NoError(t, err, "imported config is saved")
}
