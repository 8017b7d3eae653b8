// Package output provides styled terminal rendering for promptquant.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for high scores and positive trends.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for error entries and low scores.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for middling values.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and separators.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleGood   = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleBad    = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarn   = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted  = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold   = lipgloss.NewStyle().Bold(true)
	StyleLabel  = lipgloss.NewStyle().Width(20)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally. When disabled, all
// package-level styles become unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleGood = plain
		StyleBad = plain
		StyleWarn = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(20)
	}
}

// AutoDetect disables color when stdout is not a terminal.
func AutoDetect() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		SetNoColor(true)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}
