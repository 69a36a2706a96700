package tui_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildfy/internal/adapters/tui"
	"go.trai.ch/buildfy/internal/core/domain"
)

func TestView_Initializing(t *testing.T) {
	m := tui.NewModel(io.Discard, domain.PlatformOther)

	assert.Equal(t, "Initializing...", m.View())
}

func TestView_Idle(t *testing.T) {
	m := newModel(t)

	view := m.View()

	assert.Contains(t, view, "BUILDFY")
	assert.Contains(t, view, "Detected OS: Windows — Target: .exe")
	assert.Contains(t, view, "Build .exe with PyInstaller")
	assert.Contains(t, view, "quit")
}

func TestView_Building(t *testing.T) {
	m := newModel(t)

	update(m, tui.MsgButtonState{Enabled: false, Label: domain.BusyLabel})
	update(m, tui.MsgAppendLog{Line: "Starting build..."})
	update(m, keyQ)

	view := m.View()
	assert.Contains(t, view, domain.BusyLabel)
	assert.Contains(t, view, "Starting build...")
	assert.Contains(t, view, tui.HintBuildRunning)
}

func TestView_Notice(t *testing.T) {
	m := newModel(t)

	update(m, tui.MsgNotice{Notice: domain.ErrorNotice("Missing dependency", "Failed to install PyInstaller automatically.")})

	view := m.View()
	assert.Contains(t, view, "✗ Missing dependency")
	assert.Contains(t, view, "Failed to install PyInstaller automatically.")
}
