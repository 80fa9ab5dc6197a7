package system

import (
	"sync"

	"github.com/rymdport/portal/settings"
	"go.uber.org/zap"
)

const (
	appearanceNamespace = "org.freedesktop.appearance"
	colorSchemeKey      = "color-scheme"
)

// Portal reads the freedesktop appearance color-scheme through the XDG
// desktop portal and listens for its SettingChanged signal.
type Portal struct {
	logger *zap.Logger
	listen sync.Once
	b      broadcaster
}

// NewPortal returns a portal-backed signal. Nothing is contacted until the
// first call.
func NewPortal(logger *zap.Logger) *Portal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Portal{logger: logger}
}

// Available reports whether the portal answers the color-scheme query.
func (p *Portal) Available() bool {
	_, err := settings.ReadOne(appearanceNamespace, colorSchemeKey)
	return err == nil
}

// PrefersDark implements theme.SystemSignal. An unreachable portal reads as
// light.
func (p *Portal) PrefersDark() bool {
	value, err := settings.ReadOne(appearanceNamespace, colorSchemeKey)
	if err != nil {
		p.logger.Debug("portal color-scheme read failed", zap.Error(err))
		return false
	}
	return colorSchemeIsDark(value)
}

// Watch implements theme.SystemSignal. The D-Bus signal handler is
// registered once per Portal; stop only detaches onChange.
func (p *Portal) Watch(onChange func(prefersDark bool)) func() {
	stop := p.b.add(onChange)
	p.listen.Do(func() {
		go func() {
			err := settings.OnSignalSettingChanged(func(changed settings.Changed) {
				if changed.Namespace != appearanceNamespace || changed.Key != colorSchemeKey {
					return
				}
				p.b.dispatch(colorSchemeIsDark(changed.Value))
			})
			if err != nil {
				p.logger.Warn("portal color-scheme watch failed", zap.Error(err))
			}
		}()
	})
	return stop
}
