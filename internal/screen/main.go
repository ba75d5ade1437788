package screen

import (
	"context"

	"github.com/kevinmichaelchen/gh-user-search/internal/state"
	"github.com/sirupsen/logrus"
)

// ThemeController is the process-wide theme flag, e.g. *prefs.ThemeManager.
type ThemeController interface {
	Toggle(ctx context.Context) error
	SetDarkMode(ctx context.Context, dark bool) error
}

// Main is the holder for app-wide chrome; today that is only the theme.
type Main struct {
	theme ThemeController
	scope *state.Scope

	IsDarkMode *state.Var[bool]
}

func NewMain(theme ThemeController, isDarkMode *state.Var[bool], opts ...Option) *Main {
	o := buildOptions(opts)
	return &Main{theme: theme, scope: state.NewScope(o.ctx), IsDarkMode: isDarkMode}
}

func (m *Main) ToggleDarkMode() {
	m.scope.Go(func(ctx context.Context) {
		if err := m.theme.Toggle(ctx); err != nil {
			logrus.WithError(err).Warn("saving theme preference")
		}
	})
}

func (m *Main) SetDarkMode(dark bool) {
	m.scope.Go(func(ctx context.Context) {
		if err := m.theme.SetDarkMode(ctx, dark); err != nil {
			logrus.WithError(err).Warn("saving theme preference")
		}
	})
}

func (m *Main) Wait() { m.scope.Wait() }

func (m *Main) Close() { m.scope.Close() }
