package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.Width == 0 {
		return "Initializing..."
	}

	parts := []string{
		m.header(),
		m.button(),
		m.logPane(),
	}
	if m.Notice != nil {
		parts = append(parts, m.notice())
	}
	if m.Hint != "" {
		parts = append(parts, hintStyle.Render(m.Hint))
	}
	parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) header() string {
	return titleStyle.Render(strings.ToUpper(domain.AppName)) + " " + footerStyle.Render(m.Footer)
}

func (m *Model) button() string {
	if m.ButtonEnabled {
		return buttonStyle.Render(m.ButtonLabel)
	}
	return buttonDisabledStyle.Render(m.spinner.View() + m.ButtonLabel)
}

func (m *Model) logPane() string {
	return logStyle.Width(m.Width - 2).Render(m.Log.View())
}

func (m *Model) notice() string {
	n := m.Notice
	color := style.NoticeColor(n.Kind)
	title := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(style.NoticeIcon(n.Kind) + " " + n.Title)

	return noticeStyle.BorderForeground(color).Width(m.Width - 2).
		Render(title + "\n" + n.Message)
}
