// Package style defines the terminal styles used by mayamod's console
// output. Styling is skipped entirely when output is piped or NO_COLOR is
// set.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Palette
var (
	SuccessColor = lipgloss.Color("2")
	ErrorColor   = lipgloss.Color("1")
	WarningColor = lipgloss.Color("3")
	InfoColor    = lipgloss.Color("6")
	PathColor    = lipgloss.Color("4")
	MutedColor   = lipgloss.Color("8")
)

// Base styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// ColorsEnabled reports whether styled output should be produced.
func ColorsEnabled() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Render applies s to text, or returns text unchanged when colors are off.
func Render(s lipgloss.Style, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return s.Render(text)
}
