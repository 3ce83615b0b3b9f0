package theme

import (
	"sync"
)

// StorageKey is the fixed key the preference is persisted under, shared
// with the web client's local storage.
const StorageKey = "admybrand-theme"

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Store persists the single preference value.
type Store interface {
	Load() (string, error)
	Save(string) error
}

// Manager is the process-wide theme preference: read by every presentation
// consumer, mutated only by Toggle. Subscribers are notified synchronously
// from the toggling call.
type Manager struct {
	mu    sync.RWMutex
	cur   Theme
	store Store
	subs  map[int]func(Theme)
	next  int
}

// New reads the persisted value if present; anything unrecognized (or a
// load error) means the dark default.
func New(store Store) *Manager {
	cur := Dark
	if store != nil {
		if v, err := store.Load(); err == nil && Theme(v) == Light {
			cur = Light
		}
	}
	return &Manager{cur: cur, store: store, subs: map[int]func(Theme){}}
}

func (m *Manager) Get() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Toggle flips the preference, persists it, then notifies subscribers with
// the new value. The persisted value is written before any subscriber runs.
func (m *Manager) Toggle() (Theme, error) {
	m.mu.Lock()
	if m.cur == Dark {
		m.cur = Light
	} else {
		m.cur = Dark
	}
	cur := m.cur
	var err error
	if m.store != nil {
		err = m.store.Save(string(cur))
	}
	subs := make([]func(Theme), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(cur)
	}
	return cur, err
}

// Subscribe registers fn for future changes and returns an unsubscribe
// function.
func (m *Manager) Subscribe(fn func(Theme)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}
