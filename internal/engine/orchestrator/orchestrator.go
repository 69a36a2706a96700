// Package orchestrator runs build sessions and enforces that only one runs at a time.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/buildfy/internal/engine/composer"
	"go.trai.ch/buildfy/internal/engine/validator"
	"go.trai.ch/zerr"
)

// Orchestrator validates build requests, launches the packaging tool on a
// background worker and reports progress to a Presenter.
type Orchestrator struct {
	validator *validator.Validator
	runner    ports.ProcessRunner
	installer ports.ToolInstaller
	presenter ports.Presenter
	tracer    ports.Tracer
	logger    ports.Logger

	tool        []string
	workDir     string
	autoInstall bool

	state atomic.Int32

	// idle is closed while the state is Idle. Guarded by mu.
	mu   sync.Mutex
	idle chan struct{}
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTool sets the invocation prefix of the packaging tool.
func WithTool(tool []string) Option {
	return func(o *Orchestrator) {
		o.tool = append([]string(nil), tool...)
	}
}

// WithWorkDir sets the directory the packaging tool runs in.
func WithWorkDir(dir string) Option {
	return func(o *Orchestrator) {
		o.workDir = dir
	}
}

// WithAutoInstall controls whether a missing packaging tool is installed automatically.
func WithAutoInstall(enabled bool) Option {
	return func(o *Orchestrator) {
		o.autoInstall = enabled
	}
}

// New creates an Orchestrator in the Idle state.
func New(
	v *validator.Validator,
	runner ports.ProcessRunner,
	installer ports.ToolInstaller,
	presenter ports.Presenter,
	tracer ports.Tracer,
	logger ports.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		validator:   v,
		runner:      runner,
		installer:   installer,
		presenter:   presenter,
		tracer:      tracer,
		logger:      logger,
		tool:        domain.DefaultSettings(v.Platform()).ToolInvocation(),
		autoInstall: true,
		idle:        make(chan struct{}),
	}
	close(o.idle)
	for _, opt := range opts {
		opt(o)
	}
	if o.workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			o.workDir = wd
		}
	}
	return o
}

// State returns the current state.
func (o *Orchestrator) State() domain.State {
	return domain.State(o.state.Load())
}

func (o *Orchestrator) setState(s domain.State) {
	o.state.Store(int32(s))
}

// Idle returns a channel that is closed once no session is active.
func (o *Orchestrator) Idle() <-chan struct{} {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.idle
}

// acquire moves Idle to Validating. It fails when a session is active.
func (o *Orchestrator) acquire() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.state.CompareAndSwap(int32(domain.StateIdle), int32(domain.StateValidating)) {
		return false
	}
	o.idle = make(chan struct{})
	return true
}

// release returns to Idle and wakes callers waiting on Idle.
func (o *Orchestrator) release() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.setState(domain.StateIdle)
	close(o.idle)
}

// Submit starts a build session for raw. It rejects the request with
// domain.ErrAlreadyBuilding when a session is active, and returns the
// validation failure joined with domain.ErrInvalidInput when raw is invalid.
// On success the packaging tool runs on a background worker and the returned
// Session reports its outcome.
func (o *Orchestrator) Submit(ctx context.Context, raw domain.RawInput) (*Session, error) {
	if !o.acquire() {
		o.presenter.Notify(domain.InfoNotice("Build in progress", "Please wait for the current build to finish."))
		return nil, domain.ErrAlreadyBuilding
	}
	return o.start(ctx, raw)
}

// SubmitWhenIdle waits for the active session, if any, to finish and then
// starts a session for raw. Waiting is silent: the presenter is not told
// that a build is in progress.
func (o *Orchestrator) SubmitWhenIdle(ctx context.Context, raw domain.RawInput) (*Session, error) {
	for {
		select {
		case <-o.Idle():
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if o.acquire() {
			return o.start(ctx, raw)
		}
	}
}

// start runs a session for raw. The caller must hold the Validating state.
func (o *Orchestrator) start(ctx context.Context, raw domain.RawInput) (*Session, error) {
	id := uuid.NewString()
	ctx, span := o.tracer.Start(ctx, "build", ports.WithAttribute("buildfy.session_id", id))

	req, err := o.validate(ctx, raw)
	if err != nil {
		span.RecordError(err)
		span.End()
		o.release()
		o.presenter.Notify(domain.ErrorNotice("Invalid input", err.Error()))
		return nil, errors.Join(domain.ErrInvalidInput, err)
	}

	sess := newSession(id, req)
	span.SetAttribute("buildfy.name", req.Name)

	o.presenter.SetBuildButtonState(false, domain.BusyLabel)
	o.presenter.ClearLog()

	log := newTranscript(o.presenter)
	log.append("Starting build...")
	log.append("")

	o.logger.Debug("build session " + id + " started for " + req.Source)

	go o.run(context.WithoutCancel(ctx), sess, log, span)

	return sess, nil
}

func (o *Orchestrator) validate(ctx context.Context, raw domain.RawInput) (domain.BuildRequest, error) {
	_, span := o.tracer.Start(ctx, "validate")
	defer span.End()

	req, err := o.validator.Validate(raw)
	if err != nil {
		span.RecordError(err)
	}
	return req, err
}

// run is the session worker. Its deferred cleanup always returns the
// orchestrator to Idle and re-enables the build trigger, even when the
// presenter panics while a failure is reported.
func (o *Orchestrator) run(ctx context.Context, sess *Session, log *transcript, span ports.Span) {
	outcome := domain.BuildOutcome{ExitCode: -1}

	defer func() {
		o.release()
		o.guard(func() {
			o.presenter.SetBuildButtonState(true, o.validator.Platform().BuildLabel())
		})
		close(sess.done)
	}()

	defer func() {
		if r := recover(); r != nil {
			outcome = o.recovered(log, r)
		}

		outcome.Transcript = log.snapshot()
		sess.finish(outcome)

		span.SetAttribute("buildfy.state", outcome.State.String())
		span.SetAttribute("buildfy.exit_code", outcome.ExitCode)
		if outcome.Err != nil {
			span.RecordError(outcome.Err)
		}
		span.End()

		o.logger.Debug("build session " + sess.ID + " finished: " + outcome.State.String())
	}()

	outcome = o.execute(ctx, sess.Request, log)
	o.setState(outcome.State)
}

// recovered turns a worker panic into a failed outcome.
func (o *Orchestrator) recovered(log *transcript, r any) domain.BuildOutcome {
	err := fmt.Errorf("panic: %v", r)
	outcome := domain.BuildOutcome{
		State:    domain.StateFailed,
		ExitCode: -1,
		Err:      zerr.Wrap(err, domain.ErrUnexpected.Error()),
	}
	o.guard(func() {
		outcome = o.unexpected(log, err)
	})
	return outcome
}

// guard runs a presenter call and logs a panic instead of propagating it.
func (o *Orchestrator) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error(zerr.With(zerr.New("presenter panicked"), "panic", fmt.Sprint(r)))
		}
	}()
	fn()
}

func (o *Orchestrator) execute(ctx context.Context, req domain.BuildRequest, log *transcript) domain.BuildOutcome {
	cmd := composer.Compose(o.tool, req)

	log.append("Command:")
	log.append(" " + cmd.String())
	log.append("")

	if !o.installer.Available(ctx) {
		return o.toolMissing(ctx, log, domain.ErrToolNotFound)
	}

	ctx, span := o.tracer.Start(ctx, "package")
	defer span.End()

	proc, err := o.runner.Start(ctx, cmd, o.workDir)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrToolNotFound) {
			return o.toolMissing(ctx, log, err)
		}
		return o.unexpected(log, err)
	}

	o.setState(domain.StateRunning)

	for line := range proc.Lines() {
		log.append(line)
	}

	code, err := proc.Wait()
	if err != nil {
		span.RecordError(err)
		return o.unexpected(log, err)
	}
	span.SetAttribute("buildfy.exit_code", code)

	if code != 0 {
		log.append("")
		log.append(fmt.Sprintf("Build failed with exit code %d.", code))
		o.presenter.Notify(domain.ErrorNotice("Build failed", fmt.Sprintf("PyInstaller exited with code %d.", code)))
		return domain.BuildOutcome{
			State:    domain.StateFailed,
			ExitCode: code,
			Err:      zerr.With(domain.ErrToolExecutionFailed, "exit_code", code),
		}
	}

	hint := composer.ArtifactHint(req, o.workDir)
	log.append("")
	log.append("Build completed successfully.")
	log.append(hint)
	o.presenter.Notify(domain.InfoNotice("Success", "Build completed successfully."))

	return domain.BuildOutcome{
		State:        domain.StateSucceeded,
		ExitCode:     0,
		ArtifactHint: hint,
	}
}

// toolMissing makes a single install attempt. The build is never re-run.
func (o *Orchestrator) toolMissing(ctx context.Context, log *transcript, cause error) domain.BuildOutcome {
	o.setState(domain.StateToolMissing)
	outcome := domain.BuildOutcome{State: domain.StateToolMissing, ExitCode: -1, Err: cause}

	if !o.autoInstall {
		log.append("PyInstaller not found.")
		log.append("Run `buildfy setup` to install it, then build again.")
		o.presenter.Notify(domain.ErrorNotice("Missing dependency", "PyInstaller is not installed. Run `buildfy setup`."))
		return outcome
	}

	log.append("PyInstaller not found. Installing...")

	_, span := o.tracer.Start(ctx, "install")
	err := o.installer.Install(ctx, io.MultiWriter(log, span))
	log.Flush()
	if err != nil {
		span.RecordError(err)
		span.End()
		log.append("Failed to install PyInstaller: " + err.Error())
		o.presenter.Notify(domain.ErrorNotice("Missing dependency", "Failed to install PyInstaller automatically."))
		outcome.Err = zerr.Wrap(err, domain.ErrToolInstallFailed.Error())
		return outcome
	}
	span.End()

	log.append("PyInstaller installed. Please click Build again.")
	o.presenter.Notify(domain.InfoNotice("Dependency installed", "PyInstaller installed. Please click Build again."))
	return outcome
}

func (o *Orchestrator) unexpected(log *transcript, err error) domain.BuildOutcome {
	o.setState(domain.StateFailed)

	msg := "Unexpected error: " + err.Error()
	log.append(msg)
	o.presenter.Notify(domain.ErrorNotice("Error", msg))

	return domain.BuildOutcome{
		State:    domain.StateFailed,
		ExitCode: -1,
		Err:      zerr.Wrap(err, domain.ErrUnexpected.Error()),
	}
}
