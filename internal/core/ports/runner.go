// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"iter"

	"go.trai.ch/buildfy/internal/core/domain"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// ProcessRunner starts the packaging tool as a child process.
type ProcessRunner interface {
	// Start launches cmd in dir with stdout and stderr merged into one stream.
	// It returns domain.ErrToolNotFound when the executable cannot be located.
	Start(ctx context.Context, cmd domain.CommandLine, dir string) (Process, error)
}

// Process is a running child process.
type Process interface {
	// Lines yields the merged output line by line, without line terminators.
	// The sequence ends when the output is closed.
	Lines() iter.Seq[string]
	// Wait blocks until the process exits and returns its exit code.
	// A non-zero exit is not an error.
	Wait() (int, error)
}
