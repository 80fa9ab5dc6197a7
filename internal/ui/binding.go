package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	apptheme "github.com/yantradaan/yantra-daan/internal/theme"
)

// PreferencesStore keeps the theme preference in the Fyne app preferences.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps an app's preferences.
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Load returns the stored value. Fyne has no "unset" marker, so an empty
// string reads as absent.
func (s *PreferencesStore) Load(key string) (string, bool, error) {
	v := s.prefs.StringWithFallback(key, "")
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

// Save writes the value. Fyne persists preferences in the background and
// never reports a failure.
func (s *PreferencesStore) Save(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}

// SettingsSignal reads the OS light/dark variant through Fyne settings.
//
// Our own SetTheme calls also fire the settings listeners, so changes are
// only forwarded when the reported variant actually moved.
type SettingsSignal struct {
	settings fyne.Settings

	mu        sync.Mutex
	last      fyne.ThemeVariant
	listening bool
	watchers  map[int]func(bool)
	next      int
	once      sync.Once
}

// NewSettingsSignal creates a signal over an app's settings.
func NewSettingsSignal(settings fyne.Settings) *SettingsSignal {
	return &SettingsSignal{
		settings: settings,
		last:     settings.ThemeVariant(),
		watchers: make(map[int]func(bool)),
	}
}

// PrefersDark reports whether the OS asks for the dark variant. Once the
// listener is installed it answers with the last variant the listener saw.
func (s *SettingsSignal) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.listening {
		s.last = s.settings.ThemeVariant()
	}
	return s.last == theme.VariantDark
}

// Watch registers onChange. The Fyne listener is installed on first use and
// stays for the life of the app; stop only detaches onChange.
func (s *SettingsSignal) Watch(onChange func(bool)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.watchers[id] = onChange
	s.mu.Unlock()

	s.once.Do(func() {
		s.settings.AddListener(func(fs fyne.Settings) {
			s.variantChanged(fs.ThemeVariant())
		})
		s.mu.Lock()
		s.last = s.settings.ThemeVariant()
		s.listening = true
		s.mu.Unlock()
	})

	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			s.mu.Lock()
			delete(s.watchers, id)
			s.mu.Unlock()
		})
	}
}

func (s *SettingsSignal) variantChanged(v fyne.ThemeVariant) {
	s.mu.Lock()
	if v == s.last {
		s.mu.Unlock()
		return
	}
	s.last = v
	watchers := make([]func(bool), 0, len(s.watchers))
	for _, w := range s.watchers {
		watchers = append(watchers, w)
	}
	s.mu.Unlock()

	dark := v == theme.VariantDark
	for _, w := range watchers {
		w(dark)
	}
}

// AppTarget applies the resolved theme to a Fyne app.
//
// Fyne calls must happen on the main goroutine, which holds for manager
// mutations started from widget callbacks and settings listeners.
type AppTarget struct {
	app fyne.App
}

// NewAppTarget creates a target for app.
func NewAppTarget(app fyne.App) *AppTarget {
	return &AppTarget{app: app}
}

// ApplyMarkers installs a YantraTheme for r.
func (t *AppTarget) ApplyMarkers(r apptheme.Resolved) {
	t.app.Settings().SetTheme(NewYantraThemeFor(r))
}

// ClearMarkers does nothing: SetTheme replaces the whole theme, so no
// stale variant can survive the next ApplyMarkers.
func (t *AppTarget) ClearMarkers() {}
