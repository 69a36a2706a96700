// Package style holds the colors and icons shared by the logger and both renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/buildfy/internal/core/domain"
)

// Palette.
var (
	Accent = lipgloss.Color("#3776AB")
	Gold   = lipgloss.Color("#FFD43B")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Info    = "i"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// NoticeIcon returns the icon shown in front of a notice title.
func NoticeIcon(kind domain.NoticeKind) string {
	if kind == domain.NoticeError {
		return Cross
	}
	return Info
}

// NoticeColor returns the color used to render a notice.
func NoticeColor(kind domain.NoticeKind) lipgloss.Color {
	if kind == domain.NoticeError {
		return Red
	}
	return Accent
}

// StateColor returns the color used for the build trigger in the given state.
func StateColor(s domain.State) lipgloss.Color {
	switch s {
	case domain.StateSucceeded:
		return Green
	case domain.StateFailed:
		return Red
	case domain.StateToolMissing:
		return Yellow
	case domain.StateValidating, domain.StateRunning:
		return Gold
	default:
		return Accent
	}
}
