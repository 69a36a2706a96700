package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/buildfy/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.White)

	footerStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Background(style.Gold).
			Foreground(style.Ink)

	buttonDisabledStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Background(style.Slate).
				Foreground(style.White)

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Accent).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)
)
