// Package telemetry records build sessions as OpenTelemetry spans.
package telemetry

import (
	"bytes"
	"sync"
)

// DefaultEventSize is the number of bytes buffered before a log event is emitted.
const DefaultEventSize = 4096

// eventBatcher coalesces writes into chunks so that streamed tool output
// becomes a handful of span events instead of one per write.
type eventBatcher struct {
	limit   int
	onFlush func([]byte)

	mu     sync.Mutex
	buffer bytes.Buffer
	closed bool
}

func newEventBatcher(limit int, onFlush func([]byte)) *eventBatcher {
	if limit <= 0 {
		limit = DefaultEventSize
	}
	return &eventBatcher{limit: limit, onFlush: onFlush}
}

func (b *eventBatcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return len(p), nil
	}

	n, _ := b.buffer.Write(p)
	if b.buffer.Len() >= b.limit {
		b.flushLocked()
	}
	return n, nil
}

// Close emits whatever is left. Writes after Close are discarded.
func (b *eventBatcher) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.flushLocked()
}

func (b *eventBatcher) flushLocked() {
	if b.buffer.Len() == 0 {
		return
	}
	data := bytes.Clone(b.buffer.Bytes())
	b.buffer.Reset()
	b.onFlush(data)
}
