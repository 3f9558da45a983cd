// Package cli renders terminal output and reads interactive input for the
// studmoney commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, shared with the default dashboard theme.
var (
	accentColor  = lipgloss.Color("#10b981")
	successColor = lipgloss.Color("#34d399")
	warningColor = lipgloss.Color("#fbbf24")
	dangerColor  = lipgloss.Color("#f87171")
	infoColor    = lipgloss.Color("#60a5fa")
	subtleColor  = lipgloss.Color("#6b7280")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginBottom(1)
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	dangerStyle  = lipgloss.NewStyle().Foreground(dangerColor)
	infoStyle    = lipgloss.NewStyle().Foreground(infoColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(1, 2)

	// SubtleStyle dims secondary text such as tips and empty-state notes.
	SubtleStyle = lipgloss.NewStyle().Foreground(subtleColor)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
)

// Icons.
const (
	MoneyIcon = "💰"
	ChartIcon = "📊"
	TipIcon   = "💡"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return successStyle.Render("✓ " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return dangerStyle.Render("✗ " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return warningStyle.Render("⚠️ " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return infoStyle.Render("ℹ️ " + message)
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return titleStyle.Render(MoneyIcon + " " + title)
}

// FormatPrompt formats a question asked on the terminal.
func FormatPrompt(prompt string) string {
	return promptStyle.Render(prompt + " → ")
}

// RenderBox renders content in a rounded box under a title.
func RenderBox(title, content string) string {
	return boxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.UnsetMargins().Render(title),
		content,
	))
}

// SeverityStyle picks the style for an alert severity ("warning", "danger").
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "danger":
		return dangerStyle.Bold(true)
	case "warning":
		return warningStyle.Bold(true)
	default:
		return successStyle
	}
}
