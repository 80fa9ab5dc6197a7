// Package console binds the theme manager to a terminal through lipgloss.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yantradaan/yantra-daan/internal/theme"
)

// Background reports the terminal background as the system signal.
// Terminals do not broadcast background changes, so Watch never fires.
type Background struct{}

// PrefersDark implements theme.SystemSignal.
func (Background) PrefersDark() bool { return lipgloss.HasDarkBackground() }

// Watch implements theme.SystemSignal.
func (Background) Watch(func(bool)) func() { return func() {} }

// Renderer is a presentation target that switches a lipgloss renderer
// between its light and dark adaptive colours.
type Renderer struct {
	r        *lipgloss.Renderer
	detected bool
}

// NewRenderer wraps a lipgloss renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{r: r, detected: r.HasDarkBackground()}
}

// ApplyMarkers implements theme.PresentationTarget.
func (t *Renderer) ApplyMarkers(res theme.Resolved) {
	t.r.SetHasDarkBackground(res == theme.ResolvedDark)
}

// ClearMarkers restores the detected terminal background.
func (t *Renderer) ClearMarkers() {
	t.r.SetHasDarkBackground(t.detected)
}

// Dark reports which adaptive colours the renderer currently uses.
func (t *Renderer) Dark() bool { return t.r.HasDarkBackground() }

func adaptive(slot func(theme.Palette) string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: slot(theme.PaletteFor(theme.ResolvedLight)),
		Dark:  slot(theme.PaletteFor(theme.ResolvedDark)),
	}
}

// Status renders the CLI status block for state and the document markers.
func (t *Renderer) Status(state theme.State, key string, doc *theme.Document) string {
	label := t.r.NewStyle().
		Width(10).
		Foreground(adaptive(func(p theme.Palette) string { return p.Muted }))
	value := t.r.NewStyle().
		Bold(true).
		Foreground(adaptive(func(p theme.Palette) string { return p.Primary }))
	plain := t.r.NewStyle().
		Foreground(adaptive(func(p theme.Palette) string { return p.Foreground }))

	lines := []string{
		label.Render("theme") + value.Render(string(state.Resolved)) +
			plain.Render(fmt.Sprintf(" (preference: %s)", state.Preference)),
		label.Render("key") + plain.Render(key),
	}
	if doc != nil {
		root, body := doc.Attrs()
		lines = append(lines,
			label.Render("<html>")+plain.Render(root),
			label.Render("<body>")+plain.Render(body),
		)
	}

	box := t.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(adaptive(func(p theme.Palette) string { return p.Border })).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}
