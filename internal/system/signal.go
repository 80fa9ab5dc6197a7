// Package system provides theme.SystemSignal implementations backed by the
// host desktop.
package system

import (
	"sync"

	"go.uber.org/zap"

	"github.com/yantradaan/yantra-daan/internal/console"
	"github.com/yantradaan/yantra-daan/internal/model"
	"github.com/yantradaan/yantra-daan/internal/theme"
)

// broadcaster fans a prefers-dark change out to registered watchers.
type broadcaster struct {
	mu       sync.Mutex
	watchers map[int]func(bool)
	next     int
}

func (b *broadcaster) add(fn func(bool)) (stop func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.watchers == nil {
		b.watchers = map[int]func(bool){}
	}
	id := b.next
	b.next++
	b.watchers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.watchers, id)
		})
	}
}

func (b *broadcaster) dispatch(prefersDark bool) {
	b.mu.Lock()
	fns := make([]func(bool), 0, len(b.watchers))
	for _, fn := range b.watchers {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(prefersDark)
	}
}

func (b *broadcaster) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.watchers)
}

// Static is a SystemSignal with a value set by the caller.
type Static struct {
	mu   sync.Mutex
	dark bool
	b    broadcaster
}

// NewStatic returns a Static signal starting at dark.
func NewStatic(dark bool) *Static {
	return &Static{dark: dark}
}

// PrefersDark implements theme.SystemSignal.
func (s *Static) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Watch implements theme.SystemSignal.
func (s *Static) Watch(onChange func(prefersDark bool)) func() {
	return s.b.add(onChange)
}

// Set changes the value and notifies watchers when it differs.
func (s *Static) Set(dark bool) {
	s.mu.Lock()
	changed := s.dark != dark
	s.dark = dark
	s.mu.Unlock()

	if changed {
		s.b.dispatch(dark)
	}
}

// Detect picks the signal named by kind (see model.Signal*). Auto prefers the
// desktop portal and falls back to the terminal background. None returns nil,
// which the manager resolves as light.
func Detect(kind string, logger *zap.Logger) theme.SystemSignal {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch kind {
	case model.SignalNone:
		return nil
	case model.SignalPortal:
		return NewPortal(logger)
	case model.SignalTerminal:
		return console.Background{}
	}

	portal := NewPortal(logger)
	if portal.Available() {
		logger.Debug("using desktop portal color-scheme signal")
		return portal
	}
	logger.Debug("desktop portal unavailable, using terminal background")
	return console.Background{}
}
