//go:build !linux

package system

import "go.uber.org/zap"

// Portal is unavailable outside Linux; it reads as light and never changes.
type Portal struct {
	b broadcaster
}

// NewPortal returns an unavailable portal signal.
func NewPortal(_ *zap.Logger) *Portal { return &Portal{} }

// Available always reports false.
func (p *Portal) Available() bool { return false }

// PrefersDark implements theme.SystemSignal.
func (p *Portal) PrefersDark() bool { return false }

// Watch implements theme.SystemSignal.
func (p *Portal) Watch(onChange func(prefersDark bool)) func() {
	return p.b.add(onChange)
}
