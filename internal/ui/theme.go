package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("#FF6B9D")
	colorSecondary = lipgloss.Color("#C44569")
	colorAccent    = lipgloss.Color("#FFA07A")
	colorGreen     = lipgloss.Color("#4CAF50")
	colorMuted     = lipgloss.Color("#8A8A8A")
	colorText      = lipgloss.Color("#E8E8E8")
	colorBorder    = lipgloss.Color("#5A5A5A")

	titleStyle     = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
	subtitleStyle  = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	italicStyle    = lipgloss.NewStyle().Foreground(colorText).Italic(true)
	themeStyle     = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
	weekStyle      = lipgloss.NewStyle().Foreground(colorPrimary)
	subPromptStyle = lipgloss.NewStyle().Foreground(colorAccent)
	statusStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	activeDayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(colorPrimary).Bold(true)
	completedDayStyle = lipgloss.NewStyle().Foreground(colorGreen)
	plainDayStyle     = lipgloss.NewStyle().Foreground(colorText)
	cursorDayStyle    = lipgloss.NewStyle().Underline(true).Bold(true)

	doneButtonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(colorGreen).Padding(0, 1)
	pendingButtonStyle = lipgloss.NewStyle().Foreground(colorText).Background(lipgloss.Color("#3A3A3A")).Padding(0, 1)
	navStyle           = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	paneActiveStyle = paneStyle.BorderForeground(colorPrimary)
)
