// Package tui renders build sessions in an interactive terminal UI.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/ui/output"
	"go.trai.ch/buildfy/internal/ui/style"
)

// NewModel creates a model for the given host platform. Output colors are
// detected on w.
func NewModel(w io.Writer, platform domain.Platform) *Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(style.Gold)

	return &Model{
		Footer:        platform.Footer(),
		ButtonLabel:   platform.BuildLabel(),
		ButtonEnabled: true,
		Log:           NewVterm(),
		keys:          defaultKeyMap(),
		help:          help.New(),
		spinner:       sp,
	}
}
