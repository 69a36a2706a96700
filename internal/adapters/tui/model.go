package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/buildfy/internal/core/domain"
)

const (
	// rows used by the title, trigger, help line and log border.
	chromeHeight = 6
	// columns used by the log border and padding.
	chromeWidth = 4
	// rows reserved for a notice box.
	noticeHeight = 4
)

// HintBuildRunning is shown when q is pressed during a build.
const HintBuildRunning = "A build is running. Press ctrl+c to force quit."

// Model represents the TUI state.
type Model struct {
	Footer        string
	ButtonLabel   string
	ButtonEnabled bool
	Notice        *domain.Notice
	Hint          string
	Log           *Vterm
	Width         int
	Height        int

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	queue   <-chan tea.Msg
	trigger func()
}

// Init starts listening on the presenter queue.
func (m *Model) Init() tea.Cmd {
	return m.listen()
}

func (m *Model) listen() tea.Cmd {
	if m.queue == nil {
		return nil
	}
	q := m.queue
	return func() tea.Msg {
		msg, ok := <-q
		if !ok {
			return msgQueueClosed{}
		}
		return msg
	}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resizeLog()

	case MsgClearLog:
		m.Log.Reset()
		m.Hint = ""
		return m, m.listen()

	case MsgAppendLog:
		m.Log.AppendLine(msg.Line)
		return m, m.listen()

	case MsgButtonState:
		wasEnabled := m.ButtonEnabled
		m.ButtonEnabled = msg.Enabled
		m.ButtonLabel = msg.Label
		if msg.Enabled {
			m.Hint = ""
		}
		if wasEnabled && !msg.Enabled {
			return m, tea.Batch(m.listen(), m.spinner.Tick)
		}
		return m, m.listen()

	case MsgNotice:
		notice := msg.Notice
		m.Notice = &notice
		m.resizeLog()
		return m, m.listen()

	case msgQueueClosed:
		return m, nil

	case spinner.TickMsg:
		if m.ButtonEnabled {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Force):
		return tea.Quit

	case key.Matches(msg, m.keys.Quit):
		if !m.ButtonEnabled {
			m.Hint = HintBuildRunning
			return nil
		}
		return tea.Quit

	case key.Matches(msg, m.keys.Build):
		if m.trigger == nil {
			return nil
		}
		m.dismiss()
		trigger := m.trigger
		return func() tea.Msg {
			trigger()
			return nil
		}

	case key.Matches(msg, m.keys.Dismiss):
		m.dismiss()

	default:
		m.Log.Update(msg)
	}
	return nil
}

func (m *Model) dismiss() {
	if m.Notice == nil {
		return
	}
	m.Notice = nil
	m.resizeLog()
}

func (m *Model) resizeLog() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	h := m.Height - chromeHeight
	if m.Notice != nil {
		h -= noticeHeight
	}
	m.Log.SetWidth(m.Width - chromeWidth)
	m.Log.SetHeight(h)
	m.help.Width = m.Width
}
