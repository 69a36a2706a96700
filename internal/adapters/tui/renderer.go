package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the Bubble Tea program as a ports.Renderer. Presenter calls
// from the build worker are queued on a bounded channel that the event loop
// drains; a full queue blocks the caller until the loop catches up.
type Renderer struct {
	program *tea.Program
	model   *Model
	queue   chan tea.Msg
	done    chan struct{}
	err     error
}

// NewRenderer creates a new TUI renderer with a queue of queueSize messages.
func NewRenderer(model *Model, queueSize int, opts ...tea.ProgramOption) *Renderer {
	if queueSize <= 0 {
		queueSize = domain.DefaultQueueSize
	}
	queue := make(chan tea.Msg, queueSize)
	model.queue = queue

	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		queue:   queue,
		done:    make(chan struct{}),
	}
}

// OnTrigger sets the function run when the build key is pressed.
// It must be called before Start.
func (r *Renderer) OnTrigger(fn func()) {
	r.model.trigger = fn
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.err = err
		close(r.done)
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	<-r.done
	return r.err
}

// Done is closed when the TUI has terminated.
func (r *Renderer) Done() <-chan struct{} {
	return r.done
}

// ClearLog queues a log reset.
func (r *Renderer) ClearLog() {
	r.enqueue(MsgClearLog{})
}

// AppendLog queues one log line.
func (r *Renderer) AppendLog(line string) {
	r.enqueue(MsgAppendLog{Line: line})
}

// SetBuildButtonState queues a trigger update.
func (r *Renderer) SetBuildButtonState(enabled bool, label string) {
	r.enqueue(MsgButtonState{Enabled: enabled, Label: label})
}

// Notify queues a notice.
func (r *Renderer) Notify(notice domain.Notice) {
	r.enqueue(MsgNotice{Notice: notice})
}

// enqueue drops the message once the program has exited.
func (r *Renderer) enqueue(msg tea.Msg) {
	select {
	case r.queue <- msg:
	case <-r.done:
	}
}
