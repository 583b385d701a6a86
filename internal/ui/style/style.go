// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. Styles are
// named by role (Success, Error, Header) rather than by look. When
// disabled, every helper returns its input unchanged.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	mu      sync.RWMutex
	enabled bool
	colors  ColorConfig
	styles  map[role]lipgloss.Style
)

type role int

const (
	roleSuccess role = iota
	roleWarning
	roleError
	roleInfo
	roleMuted
	roleHeader
)

// Init sets up styling from the "theme" and color_* config keys.
// NO_COLOR or SEALION_NO_COLOR disables styling regardless of enable.
//
// Call once from main before any output.
func Init(enable bool, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv("SEALION_NO_COLOR") != "" {
		enable = false
	}

	enabled = enable
	if !enabled {
		colors = ColorConfig{}
		styles = nil
		return
	}

	// ANSI256 covers both the 16 basic colors and the extended palette.
	lipgloss.SetColorProfile(termenv.ANSI256)

	colors = LoadColorConfig(cfg)
	styles = map[role]lipgloss.Style{
		roleSuccess: makeStyle(colors.Success),
		roleWarning: makeStyle(colors.Warning),
		roleError:   makeStyle(colors.Error),
		roleInfo:    makeStyle(colors.Info),
		roleMuted:   makeStyle(colors.Muted),
		roleHeader:  makeStyle(colors.Header),
	}
}

// GetColors returns the active colors, empty when styling is off.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

// makeStyle accepts "bold" or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(r role, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return styles[r].Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func Success(text string) string { return render(roleSuccess, text) }
func Warning(text string) string { return render(roleWarning, text) }
func Error(text string) string   { return render(roleError, text) }
func Info(text string) string    { return render(roleInfo, text) }
func Muted(text string) string   { return render(roleMuted, text) }

// Header styles section headers and titles.
func Header(text string) string { return render(roleHeader, text) }
