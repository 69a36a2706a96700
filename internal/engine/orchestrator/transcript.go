package orchestrator

import (
	"sync"

	"go.trai.ch/buildfy/internal/core/ports"
)

// transcript forwards log lines to the presenter and keeps a copy for the outcome.
type transcript struct {
	presenter ports.Presenter
	out       *LineWriter

	mu    sync.Mutex
	lines []string
}

func newTranscript(p ports.Presenter) *transcript {
	t := &transcript{presenter: p}
	t.out = NewLineWriter(t.append)
	return t
}

func (t *transcript) append(line string) {
	t.mu.Lock()
	t.lines = append(t.lines, line)
	t.mu.Unlock()

	t.presenter.AppendLog(line)
}

// Write streams installer output into the log line by line.
func (t *transcript) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Flush emits a trailing partial line.
func (t *transcript) Flush() {
	t.out.Flush()
}

func (t *transcript) snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}
