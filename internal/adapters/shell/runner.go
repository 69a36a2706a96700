// Package shell runs the packaging tool as a child process and streams its output line by line.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/zerr"
)

const initialLineBuffer = 64 * 1024

// Runner implements ports.ProcessRunner using os/exec, optionally attached to a PTY.
type Runner struct {
	logger ports.Logger
	usePTY bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithPTY runs the child attached to a pseudo-terminal so tools that
// only color or flush their output on a TTY behave as in a terminal.
func WithPTY(enabled bool) Option {
	return func(r *Runner) {
		r.usePTY = enabled
	}
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, opts ...Option) *Runner {
	r := &Runner{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches cmd in dir with stdout and stderr merged.
// The child is not bound to ctx: a started build always runs to completion.
func (r *Runner) Start(_ context.Context, cmd domain.CommandLine, dir string) (ports.Process, error) {
	tokens := cmd.Tokens()
	if len(tokens) == 0 {
		return nil, zerr.With(domain.ErrProcessStartFailed, "reason", "empty command")
	}

	name := tokens[0]
	executable, err := exec.LookPath(name)
	if err != nil {
		notFound := zerr.Wrap(domain.ErrToolNotFound, domain.ErrProcessStartFailed.Error())
		return nil, zerr.With(notFound, "executable", name)
	}

	c := exec.Command(executable, tokens[1:]...) //nolint:gosec // command composed from validated input
	c.Args[0] = name
	c.Dir = dir

	r.logger.Debug("starting " + cmd.String())

	if r.usePTY {
		return startPTY(c)
	}
	return startPipe(c)
}

func startPipe(c *exec.Cmd) (*process, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrProcessStartFailed.Error())
	}

	c.Stdout = pw
	c.Stderr = pw

	if err := c.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProcessStartFailed.Error()), "path", c.Path)
	}

	// The child holds its own copy of the write end; EOF arrives once it exits.
	_ = pw.Close()

	return &process{cmd: c, out: pr}, nil
}

func startPTY(c *exec.Cmd) (*process, error) {
	ptmx, err := pty.Start(c)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to start pty"), "path", c.Path)
	}
	return &process{cmd: c, out: ptmx}, nil
}

// process is a started child whose merged output is read from out.
type process struct {
	cmd *exec.Cmd
	out io.ReadCloser

	closeOnce sync.Once
	readErr   error
}

// Lines yields each output line with trailing \r removed and invalid UTF-8
// replaced. Lines have no length limit. Output left unread when the consumer
// stops early is drained so the child never blocks on a full pipe.
func (p *process) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		reader := bufio.NewReaderSize(p.out, initialLineBuffer)
		defer func() { _, _ = io.Copy(io.Discard, reader) }()

		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				if !yield(strings.ToValidUTF8(line, "\uFFFD")) {
					return
				}
			}
			if err != nil {
				// A PTY master reports EIO once the child side is gone.
				if !errors.Is(err, io.EOF) && !errors.Is(err, syscall.EIO) && !errors.Is(err, os.ErrClosed) {
					p.readErr = err
				}
				return
			}
		}
	}
}

// Wait waits for the child and returns its exit code. A non-zero exit is not an error.
func (p *process) Wait() (int, error) {
	err := p.cmd.Wait()
	p.closeOnce.Do(func() { _ = p.out.Close() })

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.Wrap(err, "failed to wait for process")
	}

	if p.readErr != nil {
		return 0, zerr.Wrap(p.readErr, "failed to read process output")
	}

	return 0, nil
}
