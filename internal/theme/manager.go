package theme

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PreferenceStore persists the stated preference under a single key.
// Load reports ok=false when nothing is stored.
type PreferenceStore interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
}

// SystemSignal is the host's "prefers dark" color-scheme query plus its
// change notification. Watch must not invoke onChange before it returns, and
// the returned stop function must not block on an in-flight callback.
type SystemSignal interface {
	PrefersDark() bool
	Watch(onChange func(prefersDark bool)) (stop func())
}

// PresentationTarget receives the resolved theme as global markers.
type PresentationTarget interface {
	ApplyMarkers(Resolved)
	ClearMarkers()
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	key         string
	fallback    Preference
	logger      *zap.Logger
	subscribers []func(State)
}

// WithStorageKey overrides DefaultStorageKey.
func WithStorageKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithDefault sets the preference used when nothing valid is stored.
func WithDefault(p Preference) Option {
	return func(o *options) { o.fallback = p }
}

// WithLogger sets the logger used for persistence failures and tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSubscriber registers fn before initialization so it receives the
// initial state.
func WithSubscriber(fn func(State)) Option {
	return func(o *options) { o.subscribers = append(o.subscribers, fn) }
}

type subscriber struct {
	id string
	fn func(State)
}

// Manager is the single source of truth for the display-mode preference.
//
// Mutations (SetPreference, Toggle and system-signal changes) are serialized:
// each one updates the state, applies markers and notifies subscribers before
// the next begins. Subscribers may call the getters but must not call
// SetPreference, Toggle or Close synchronously.
type Manager struct {
	store  PreferenceStore
	signal SystemSignal
	target PresentationTarget
	key    string
	logger *zap.Logger

	mutate    sync.Mutex
	stopWatch func() // guarded by mutate

	mu     sync.RWMutex
	state  State
	subs   []subscriber
	closed bool
}

// New builds a Manager and runs its initialization once: load the stored
// preference (falling back to WithDefault, then system), resolve it, apply
// the markers and notify the subscribers registered through WithSubscriber.
// Any of store, signal and target may be nil.
func New(store PreferenceStore, signal SystemSignal, target PresentationTarget, opts ...Option) *Manager {
	o := options{key: DefaultStorageKey, fallback: PreferenceSystem, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Manager{
		store:  store,
		signal: signal,
		target: target,
		key:    o.key,
		logger: o.logger,
	}
	for _, fn := range o.subscribers {
		m.Subscribe(fn)
	}

	fallback := o.fallback
	if !fallback.Valid() {
		m.logger.Warn("invalid default theme preference, using system", zap.String("default", string(fallback)))
		fallback = PreferenceSystem
	}

	m.mutate.Lock()
	defer m.mutate.Unlock()
	m.commitLocked(m.load(fallback))
	return m
}

// Preference returns the stated preference.
func (m *Manager) Preference() Preference {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Preference
}

// Resolved returns the concrete theme currently applied.
func (m *Manager) Resolved() Resolved {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Resolved
}

// State returns the preference and its resolution as one snapshot.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// StorageKey returns the key the preference is persisted under.
func (m *Manager) StorageKey() string { return m.key }

// SetPreference persists p, re-resolves, re-applies the markers and notifies
// every subscriber before returning. A storage failure is logged and does not
// roll back the in-memory preference.
func (m *Manager) SetPreference(p Preference) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPreference, string(p))
	}

	m.mutate.Lock()
	defer m.mutate.Unlock()
	m.setLocked(p)
	return nil
}

// Toggle pins the preference to the opposite of the resolved theme, so a
// system preference currently resolving dark becomes an explicit light.
// It returns the new preference.
func (m *Manager) Toggle() Preference {
	m.mutate.Lock()
	defer m.mutate.Unlock()

	next := m.State().Resolved.Opposite().Preference()
	m.setLocked(next)
	return next
}

// Subscribe registers fn for every state change. Callbacks run synchronously
// in registration order. The returned function removes the subscription and
// may be called more than once.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	id := uuid.New().String()
	m.mu.Lock()
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	m.mu.Unlock()
	m.logger.Debug("theme subscriber added", zap.String("subscription", id))

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					break
				}
			}
			m.logger.Debug("theme subscriber removed", zap.String("subscription", id))
		})
	}
}

// Close releases the system-signal subscription. Notifications that arrive
// afterwards are ignored. Close is idempotent.
func (m *Manager) Close() {
	m.mutate.Lock()
	defer m.mutate.Unlock()

	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	if m.stopWatch != nil {
		m.stopWatch()
		m.stopWatch = nil
	}
}

func (m *Manager) setLocked(p Preference) {
	m.save(p)
	m.commitLocked(p)
}

// commitLocked resolves p, applies it and fans it out. Callers hold mutate.
// The watch is registered before resolving so a flip in between is either
// read here or delivered afterwards.
func (m *Manager) commitLocked(p Preference) {
	m.syncWatchLocked(p)
	resolved := resolve(p, m.signal)
	m.apply(resolved)

	state := State{Preference: p, Resolved: resolved}
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()

	m.logger.Debug("theme resolved", zap.String("preference", string(p)), zap.String("resolved", string(resolved)))
	m.notify(state)
}

// handleSystemChange runs on the signal's goroutine. Notifications can
// arrive out of order, so the payload is only a hint and the signal is read
// again under the lock.
func (m *Manager) handleSystemChange(hint bool) {
	m.mutate.Lock()
	defer m.mutate.Unlock()

	m.mu.RLock()
	current, closed := m.state, m.closed
	m.mu.RUnlock()

	if closed || current.Preference != PreferenceSystem {
		m.logger.Debug("ignoring stale system color-scheme change", zap.Bool("prefers_dark", hint))
		return
	}

	resolved := resolve(PreferenceSystem, m.signal)
	if resolved == current.Resolved {
		return
	}

	m.apply(resolved)
	state := State{Preference: PreferenceSystem, Resolved: resolved}
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()

	m.logger.Debug("system color scheme changed", zap.String("resolved", string(resolved)))
	m.notify(state)
}

// syncWatchLocked keeps the signal subscription alive only while the
// preference follows the system.
func (m *Manager) syncWatchLocked(p Preference) {
	if p == PreferenceSystem {
		m.mu.RLock()
		closed := m.closed
		m.mu.RUnlock()
		if m.stopWatch == nil && m.signal != nil && !closed {
			m.stopWatch = m.signal.Watch(m.handleSystemChange)
		}
		return
	}
	if m.stopWatch != nil {
		m.stopWatch()
		m.stopWatch = nil
	}
}

func (m *Manager) apply(r Resolved) {
	if m.target == nil {
		return
	}
	m.target.ClearMarkers()
	m.target.ApplyMarkers(r)
}

func (m *Manager) notify(state State) {
	m.mu.RLock()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.RUnlock()

	for _, s := range subs {
		s.fn(state)
	}
}

func (m *Manager) load(fallback Preference) Preference {
	if m.store == nil {
		m.logPersistence(&PersistenceError{Op: "load", Key: m.key, Err: ErrStorageUnavailable})
		return fallback
	}

	raw, ok, err := m.store.Load(m.key)
	if err != nil {
		m.logPersistence(&PersistenceError{Op: "load", Key: m.key, Err: err})
		return fallback
	}
	if !ok {
		return fallback
	}

	p, err := ParsePreference(raw)
	if err != nil {
		m.logger.Warn("ignoring stored theme preference", zap.String("key", m.key), zap.Error(err))
		return fallback
	}
	return p
}

func (m *Manager) save(p Preference) {
	if m.store == nil {
		m.logPersistence(&PersistenceError{Op: "save", Key: m.key, Err: ErrStorageUnavailable})
		return
	}
	if err := m.store.Save(m.key, string(p)); err != nil {
		m.logPersistence(&PersistenceError{Op: "save", Key: m.key, Err: err})
	}
}

func (m *Manager) logPersistence(err *PersistenceError) {
	m.logger.Warn("theme preference storage failed",
		zap.String("op", err.Op),
		zap.String("key", err.Key),
		zap.Error(err),
	)
}
