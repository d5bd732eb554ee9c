package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the semantic styles used across the CLI output.
type Styles struct {
	// Noun styles identifiable nouns (project names, paths).
	Noun lipgloss.Style

	// Bold styles emphasized text (tree roots, summary lines).
	Bold lipgloss.Style

	// Muted styles secondary text (file descriptions, separators).
	Muted lipgloss.Style
}

// GetStyles returns the semantic style set.
func GetStyles() Styles {
	return Styles{
		Noun:  lipgloss.NewStyle().Foreground(ColorCyan),
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Faint(true),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
