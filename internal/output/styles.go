package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names, paths, package names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "patched" file status.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "removed" file status.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module names, paths, package names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (scaffolding, patching, removing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, prefixes).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants reported while materializing a module.
const (
	StatusCreated = "created"
	StatusRenamed = "renamed"
	StatusPatched = "patched"
	StatusRemoved = "removed"
	StatusSkipped = "skipped"
)

// StatusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusRenamed, StatusPatched:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// FileStatus prints a single file status line: "  created  path/to/file".
func FileStatus(status, path string) {
	Println(fmt.Sprintf("  %s  %s", StatusStyle(status).Render(status), path))
}

// Summary prints a bold completion line prefixed with a green checkmark.
func Summary(msg string) {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	Println(check + " " + StyleSummary.Render(msg))
}
