// Package term provides the semantic terminal styles shared by logging and
// display, plus TTY detection.
//
// Styles are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] sets them once
// during startup; when colors are disabled every style is a plain
// pass-through, making Render a no-op on the text.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/glowmark/limelight/internal/config"
)

// Semantic styles. Plain (unstyled) until [Configure] runs.
var (
	Info    = lipgloss.NewStyle()
	Success = lipgloss.NewStyle()
	Warn    = lipgloss.NewStyle()
	Error   = lipgloss.NewStyle()
	Render  = lipgloss.NewStyle()
	Debug   = lipgloss.NewStyle()
	Banner  = lipgloss.NewStyle()
)

var enabled bool

// Configure resolves the color mode and installs the package-level styles.
// Call once during startup (from logging.NewLogger).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if !enabled {
		plain := lipgloss.NewStyle()
		Info, Success, Warn, Error, Render, Debug, Banner =
			plain, plain, plain, plain, plain, plain, plain
		return
	}

	Info = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Success = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Warn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	Error = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Render = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	Debug = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	Banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return enabled }

// resolve determines whether colors should be enabled based on the
// configured mode, TTY detection, and the NO_COLOR env var
// (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
