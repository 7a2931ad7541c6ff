// Package tui provides the interactive terminal panel for DocParse.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	dimColor       = lipgloss.Color("#6B7280") // Gray
	bgColor        = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F9FAFB") // Light
)

// UI Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#374151"))

	normalStyle = lipgloss.NewStyle().
			Foreground(textColor)

	focusedHeaderStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	statusKeyStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textColor).
			Padding(0, 1).
			Bold(true)

	statusValueStyle = lipgloss.NewStyle().
				Background(bgColor).
				Foreground(dimColor).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)
)

// Logo returns the ASCII art banner shown on the file picker screen.
func Logo() string {
	logo := "" +
		"  ____             ____                      \n" +
		" |  _ \\  ___   ___|  _ \\ __ _ _ __ ___  ___ \n" +
		" | | | |/ _ \\ / __| |_) / _` | '__/ __|/ _ \\\n" +
		" | |_| | (_) | (__|  __/ (_| | |  \\__ \\  __/\n" +
		" |____/ \\___/ \\___|_|   \\__,_|_|  |___/\\___|\n"
	return titleStyle.Render(logo)
}
