package tui

import (
	"bytes"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/midterm"
)

// Vterm is a scrollable virtual terminal holding the build log. PyInstaller
// and pip colour their output, so lines are interpreted rather than printed raw.
type Vterm struct {
	vt      *midterm.Terminal
	Offset  int
	Height  int
	Width   int
	viewBuf *bytes.Buffer
	mu      sync.Mutex
}

// NewVterm creates a new Vterm instance.
func NewVterm() *Vterm {
	return &Vterm{
		vt:      midterm.NewAutoResizingTerminal(),
		viewBuf: new(bytes.Buffer),
	}
}

// Write implements io.Writer to write output to the virtual terminal.
func (v *Vterm) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	stickToBottom := v.Offset >= v.maxOffset()

	n, err := v.vt.Write(p)

	if stickToBottom {
		v.Offset = v.maxOffset()
	}

	return n, err
}

// AppendLine writes one log line.
func (v *Vterm) AppendLine(line string) {
	_, _ = v.Write([]byte(line + "\r\n"))
}

// Reset discards all content.
func (v *Vterm) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.vt = midterm.NewAutoResizingTerminal()
	if v.Width > 0 {
		v.vt.ResizeX(v.Width)
	}
	v.Offset = 0
}

// SetHeight updates the view height and adjusts scrolling.
func (v *Vterm) SetHeight(h int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if h < 1 {
		h = 1
	}

	stickToBottom := v.Offset >= v.maxOffset()
	v.Height = h

	if stickToBottom {
		v.Offset = v.maxOffset()
	} else if limit := v.maxOffset(); v.Offset > limit {
		v.Offset = limit
	}
}

// SetWidth updates the terminal width.
func (v *Vterm) SetWidth(w int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if w < 1 {
		w = 1
	}
	v.Width = w
	v.vt.ResizeX(w)
}

// UsedHeight returns the total number of lines in the terminal buffer.
func (v *Vterm) UsedHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.vt.UsedHeight()
}

// View renders the visible window.
func (v *Vterm) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.viewBuf.Reset()
	v.clamp()

	for i := 0; i < v.Height; i++ {
		row := v.Offset + i
		if row >= v.vt.UsedHeight() {
			break
		}
		if i > 0 {
			_ = v.viewBuf.WriteByte('\n')
		}
		_ = v.vt.RenderLine(v.viewBuf, row)
	}

	return v.viewBuf.String()
}

// Update scrolls the window.
func (v *Vterm) Update(msg tea.Msg) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			v.Offset--
		case "down", "j":
			v.Offset++
		case "pgup":
			v.Offset -= v.Height
		case "pgdown":
			v.Offset += v.Height
		case "home":
			v.Offset = 0
		case "end":
			v.Offset = v.maxOffset()
		}
	}
	v.clamp()
}

func (v *Vterm) clamp() {
	if v.Offset < 0 {
		v.Offset = 0
	}
	if limit := v.maxOffset(); v.Offset > limit {
		v.Offset = limit
	}
}

func (v *Vterm) maxOffset() int {
	return max(v.vt.UsedHeight()-v.Height, 0)
}
