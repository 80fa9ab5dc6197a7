package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yantradaan/yantra-daan/internal/theme"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"), nil)

	v, ok, err := s.Load("yantra-daan-theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFileStoreRoundTripKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	s := NewFileStore(path, nil)

	require.NoError(t, s.Save("lang", "hi"))
	require.NoError(t, s.Save("yantra-daan-theme", "dark"))
	require.NoError(t, s.Save("yantra-daan-theme", "light"))

	v, ok, err := NewFileStore(path, nil).Load("yantra-daan-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"lang": "hi", "yantra-daan-theme": "light"}, all)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".preferences-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, _, err := NewFileStore(path, nil).Load("yantra-daan-theme")
	assert.Error(t, err)
}

func TestFileStoreSaveRecoversFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{truncated"), 0o600))

	core, logs := observer.New(zapcore.WarnLevel)
	s := NewFileStore(path, zap.New(core))
	require.NoError(t, s.Save("yantra-daan-theme", "dark"))

	v, ok, err := s.Load("yantra-daan-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.Equal(t, 1, logs.FilterMessage("discarding unreadable preferences file").Len())

	kept, err := os.ReadFile(path + ".corrupt")
	require.NoError(t, err)
	assert.Equal(t, "{truncated", string(kept))
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, ok, err := NewFileStore(path, nil).Load("yantra-daan-theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreReplace(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"), nil)
	require.NoError(t, s.Save("old", "x"))
	require.NoError(t, s.Replace(map[string]string{"yantra-daan-theme": "dark"}))

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"yantra-daan-theme": "dark"}, all)
}

func TestFileStoreBacksManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	first := theme.New(NewFileStore(path, nil), nil, nil)
	require.NoError(t, first.SetPreference(theme.PreferenceDark))
	first.Close()

	second := theme.New(NewFileStore(path, nil), nil, nil, theme.WithDefault(theme.PreferenceLight))
	defer second.Close()
	assert.Equal(t, theme.PreferenceDark, second.Preference())
	assert.Equal(t, theme.ResolvedDark, second.Resolved())
}

func TestUnwritableFileStoreDoesNotBreakManager(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// parent "directory" is a regular file, so every write fails
	m := theme.New(NewFileStore(filepath.Join(blocker, "prefs.json"), nil), nil, nil)
	defer m.Close()

	require.NoError(t, m.SetPreference(theme.PreferenceDark))
	assert.Equal(t, theme.PreferenceDark, m.Preference())
}
