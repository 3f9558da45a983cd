package tui

import (
	"time"

	"github.com/Veraticus/studmoney/internal/tui/themes"
)

// DefaultRefreshInterval is how often the dashboard recomputes its windows.
const DefaultRefreshInterval = time.Minute

// Config holds TUI configuration.
type Config struct {
	Theme           themes.Theme
	RefreshInterval time.Duration
	Width           int
	Height          int
	ShowChart       bool
	ShowHelp        bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:           themes.Default,
		RefreshInterval: DefaultRefreshInterval,
		Width:           80,
		Height:          24,
		ShowChart:       true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithRefreshInterval sets how often the dashboard reloads. Zero disables
// periodic reloads.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *Config) {
		c.RefreshInterval = d
	}
}
