package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimColor     = lipgloss.Color("7")
	accentColor  = lipgloss.Color("12")
	successColor = lipgloss.Color("10")
	warningColor = lipgloss.Color("11")
	dangerColor  = lipgloss.Color("9")

	// Panel title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// Code snippet header style
	CodeHeaderStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Timestamp/status style
	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// Follow-up question style
	QuestionStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	// Error flash style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)

	// Selected history row style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

// FormatFooter formats a footer string with alternating keys and descriptions.
// Keys remain default color, descriptions are rendered bold in the accent color.
// Usage: FormatFooter("j/k", "Navigate", "Enter", "Select", "Esc", "Close")
func FormatFooter(parts ...string) string {
	descStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	var result []string
	for i := 0; i < len(parts); i += 2 {
		if i+1 < len(parts) {
			result = append(result, parts[i]+" "+descStyle.Render(parts[i+1]))
		}
	}
	return strings.Join(result, "  ")
}
