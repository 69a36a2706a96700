package tui

import "go.trai.ch/buildfy/internal/core/domain"

// MsgClearLog empties the log pane.
type MsgClearLog struct{}

// MsgAppendLog appends one line to the log pane.
type MsgAppendLog struct {
	Line string
}

// MsgButtonState updates the build trigger.
type MsgButtonState struct {
	Enabled bool
	Label   string
}

// MsgNotice shows a notice above the key help.
type MsgNotice struct {
	Notice domain.Notice
}

// msgQueueClosed ends the queue listener.
type msgQueueClosed struct{}
