// Package theme keeps the display-mode preference of the Yantra Daan
// front-end in one place.
//
// A Manager owns the stated Preference (light, dark or system), resolves it
// to a concrete Resolved theme, persists it through a PreferenceStore, tracks
// the host's SystemSignal while the preference follows the system, and pushes
// every resolution to a PresentationTarget and to subscribers.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultStorageKey is the persistence key used when none is configured.
const DefaultStorageKey = "yantra-daan-theme"

// Preference is the user's stated display mode.
type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system" // Follows the host color scheme
)

// Resolved is the concrete theme actually shown. It is never "system".
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

// ErrUnknownPreference is returned for values outside light/dark/system.
var ErrUnknownPreference = errors.New("unknown theme preference")

// Preferences lists the valid preferences in display order.
var Preferences = [...]Preference{PreferenceSystem, PreferenceLight, PreferenceDark}

// ParsePreference converts a persisted or user-typed value into a Preference.
func ParsePreference(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreference, s)
	}
	return p, nil
}

// Valid reports whether p is one of the three known preferences.
func (p Preference) Valid() bool {
	switch p {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return true
	}
	return false
}

func (p Preference) String() string { return string(p) }

// Opposite returns the other concrete theme.
func (r Resolved) Opposite() Resolved {
	if r == ResolvedDark {
		return ResolvedLight
	}
	return ResolvedDark
}

// Preference returns the explicit preference that pins r.
func (r Resolved) Preference() Preference {
	if r == ResolvedDark {
		return PreferenceDark
	}
	return PreferenceLight
}

func (r Resolved) String() string { return string(r) }

// State is the preference/resolution pair handed to subscribers.
type State struct {
	Preference Preference
	Resolved   Resolved
}

// resolve maps a preference onto a concrete theme. A nil signal means the
// host has no color-scheme API, which reads as light.
func resolve(p Preference, signal SystemSignal) Resolved {
	switch p {
	case PreferenceDark:
		return ResolvedDark
	case PreferenceLight:
		return ResolvedLight
	}
	if signal != nil && signal.PrefersDark() {
		return ResolvedDark
	}
	return ResolvedLight
}
