package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildfy/internal/adapters/tui"
)

func stripReset(s string) string {
	return strings.ReplaceAll(s, "\x1b[0m", "")
}

func TestVterm_AppendLineSticksToBottom(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetHeight(2)

	for _, line := range []string{"one", "two", "three", "four"} {
		vt.AppendLine(line)
	}

	assert.Equal(t, vt.MaxOffset(), vt.Offset)
	assert.Contains(t, stripReset(vt.View()), "four")
}

func TestVterm_ScrolledUpStaysScrolled(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetHeight(2)
	_, _ = vt.Write([]byte("1\r\n2\r\n3\r\n4\r\n5\r\n"))
	vt.Offset = 0

	vt.AppendLine("6")

	assert.Equal(t, 0, vt.Offset)
}

func TestVterm_View(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetHeight(2)
	_, _ = vt.Write([]byte("hello\r\nworld"))

	assert.Equal(t, "hello\nworld", stripReset(vt.View()))
}

func TestVterm_Reset(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetWidth(40)
	vt.SetHeight(5)
	vt.AppendLine("old session")

	vt.Reset()
	vt.AppendLine("new session")

	view := stripReset(vt.View())
	assert.NotContains(t, view, "old session")
	assert.Contains(t, view, "new session")
	assert.Equal(t, 40, vt.Width)
}

func TestVterm_SetHeight(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	_, _ = vt.Write([]byte("1\r\n2\r\n3\r\n4\r\n5\r\n6\r\n7\r\n8\r\n9\r\n10"))

	vt.Offset = vt.MaxOffset()
	vt.SetHeight(5)
	assert.Equal(t, 5, vt.Height)
	assert.Equal(t, vt.MaxOffset(), vt.Offset)

	vt.Offset = 0
	vt.SetHeight(2)
	assert.Equal(t, 0, vt.Offset)

	vt.SetHeight(20)
	assert.Equal(t, 0, vt.Offset)

	vt.SetHeight(0)
	assert.Equal(t, 1, vt.Height)
}

func TestVterm_SetWidth(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetWidth(10)
	assert.Equal(t, 10, vt.Width)

	vt.SetWidth(0)
	assert.Equal(t, 1, vt.Width)
}

func TestVterm_Update(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetHeight(2)
	_, _ = vt.Write([]byte("0\r\n1\r\n2\r\n3"))

	vt.Offset = vt.MaxOffset()
	assert.Equal(t, 2, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, vt.Offset)
}
