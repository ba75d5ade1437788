package prefs

import (
	"context"
	"sync"

	"github.com/kevinmichaelchen/gh-user-search/internal/state"
	"github.com/sirupsen/logrus"
)

// ThemeManager owns the dark mode flag for the whole process. IsDarkMode
// reads false until Start has loaded the stored value.
type ThemeManager struct {
	store Store

	IsDarkMode *state.Var[bool]

	writeMu sync.Mutex
	// written is set by the first write; the initial load must not
	// overwrite it with an older stored value.
	written bool
	loaded  chan struct{}
	cancel  context.CancelFunc
	started sync.Once
}

func NewThemeManager(store Store) *ThemeManager {
	return &ThemeManager{
		store:      store,
		IsDarkMode: state.NewVar(false),
		loaded:     make(chan struct{}),
		cancel:     func() {},
	}
}

// Start loads the stored preference in the background. Read errors are
// logged and leave the default in place.
func (m *ThemeManager) Start(ctx context.Context) {
	m.started.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		m.cancel = cancel
		go func() {
			defer close(m.loaded)
			dark, ok, err := m.store.GetBool(ctx, KeyDarkMode)
			if err != nil {
				logrus.WithError(err).Warn("reading theme preference")
				return
			}
			if !ok {
				return
			}
			m.writeMu.Lock()
			defer m.writeMu.Unlock()
			if !m.written {
				m.IsDarkMode.Set(dark)
			}
		}()
	})
}

// Loaded is closed once the initial read has finished.
func (m *ThemeManager) Loaded() <-chan struct{} {
	return m.loaded
}

func (m *ThemeManager) Toggle(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	var dark bool
	m.IsDarkMode.Update(func(cur bool) bool {
		dark = !cur
		return dark
	})
	m.written = true
	return m.store.SetBool(ctx, KeyDarkMode, dark)
}

func (m *ThemeManager) SetDarkMode(ctx context.Context, dark bool) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.write(ctx, dark)
}

// write publishes first so the UI flips immediately, then persists. Callers
// hold writeMu.
func (m *ThemeManager) write(ctx context.Context, dark bool) error {
	m.IsDarkMode.Set(dark)
	m.written = true
	return m.store.SetBool(ctx, KeyDarkMode, dark)
}

// Close stops a pending initial load and closes the store.
func (m *ThemeManager) Close(ctx context.Context) error {
	m.started.Do(func() { close(m.loaded) })
	m.cancel()
	<-m.loaded
	return m.store.Close(ctx)
}
