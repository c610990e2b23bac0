package tui

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 8).Align(lipgloss.Center).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	promptStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)
