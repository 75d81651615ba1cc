package preview

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("33")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(primaryColor).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.HiddenBorder()).
			BorderBottom(true).
			Padding(0, 1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(errorColor).
				Padding(0, 1)

	copiedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	controlsStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			MarginTop(1)
)
