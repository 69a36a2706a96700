// Package linear provides a line-oriented renderer for pipes and CI logs.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/buildfy/internal/ui/output"
	"go.trai.ch/buildfy/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for non-interactive environments.
// Tool output goes to stdout unchanged; status and notices go to stderr.
type Renderer struct {
	stdout   io.Writer
	stderr   io.Writer
	output   *termenv.Output
	platform domain.Platform

	mu      sync.Mutex
	enabled bool
	printed int
}

// NewRenderer creates a new linear renderer.
func NewRenderer(stdout, stderr io.Writer, platform domain.Platform) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:   stdout,
		stderr:   stderr,
		output:   output.NewWithProfile(stderr, output.ColorProfileANSI),
		platform: platform,
		enabled:  true,
	}
}

// Start prints the platform line.
func (r *Renderer) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stderr, r.output.String(r.platform.Footer()).Faint())
	return nil
}

// Stop is a no-op for the linear renderer.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op for the linear renderer.
func (r *Renderer) Wait() error {
	return nil
}

// ClearLog separates consecutive sessions; printed lines cannot be taken back.
func (r *Renderer) ClearLog() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.printed > 0 {
		_, _ = fmt.Fprintln(r.stdout)
	}
	r.printed = 0
}

// AppendLog prints one line.
func (r *Renderer) AppendLog(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout, line)
	r.printed++
}

// SetBuildButtonState reports when a build starts and when buildfy is ready again.
func (r *Renderer) SetBuildButtonState(enabled bool, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if enabled == r.enabled {
		return
	}
	r.enabled = enabled

	icon := style.Circle
	color := style.Accent
	if !enabled {
		icon = style.Dot
		color = style.Gold
	}
	text := r.output.String(icon + " " + label).Foreground(r.output.Color(string(color)))
	_, _ = fmt.Fprintln(r.stderr, text)
}

// Notify prints a notice.
func (r *Renderer) Notify(notice domain.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()

	color := r.output.Color(string(style.NoticeColor(notice.Kind)))
	title := r.output.String(style.NoticeIcon(notice.Kind) + " " + notice.Title).Foreground(color).Bold()
	_, _ = fmt.Fprintf(r.stderr, "%s: %s\n", title, notice.Message)
}
