package ports

import (
	"context"

	"go.trai.ch/buildfy/internal/core/domain"
)

//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks

// Presenter is the surface the orchestrator drives while a build runs.
// Calls may come from any goroutine.
type Presenter interface {
	// ClearLog empties the log pane.
	ClearLog()
	// AppendLog appends one line to the log pane.
	AppendLog(line string)
	// SetBuildButtonState enables or disables the build trigger and sets its label.
	SetBuildButtonState(enabled bool, label string)
	// Notify shows a modal notice.
	Notify(notice domain.Notice)
}

// Renderer is a Presenter with a lifecycle.
type Renderer interface {
	Presenter

	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare for shutdown.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error
}
