// Package styles provides shared lipgloss styles for textctl output.
//
// Colors come from the active Theme (see Init). Styles are package
// variables so renderers stay free of theme plumbing.
package styles

import "charm.land/lipgloss/v2"

// Common styles, rebuilt by Init.
var (
	// HeaderStyle renders table headers
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(DefaultTheme.Primary)

	// SuccessStyle marks conforming input
	SuccessStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Success)

	// ErrorStyle marks input that filtering changed
	ErrorStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Error)

	// MutedStyle renders secondary columns (sources, descriptions)
	MutedStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Muted)

	// NormalStyle renders regular cells
	NormalStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Normal)
)

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
}
