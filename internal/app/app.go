// Package app implements the application layer for buildfy.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/buildfy/internal/adapters/config"
	"go.trai.ch/buildfy/internal/adapters/detector"
	"go.trai.ch/buildfy/internal/adapters/installer"
	"go.trai.ch/buildfy/internal/adapters/linear"
	"go.trai.ch/buildfy/internal/adapters/tui"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/buildfy/internal/engine/orchestrator"
	"go.trai.ch/buildfy/internal/engine/validator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	settings  domain.Settings
	validator *validator.Validator
	runner    ports.ProcessRunner
	installer ports.ToolInstaller
	tracer    ports.Tracer
	watcher   ports.Watcher
	logger    ports.Logger

	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
	detect     func() detector.Environment
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	settings domain.Settings,
	v *validator.Validator,
	runner ports.ProcessRunner,
	inst ports.ToolInstaller,
	tracer ports.Tracer,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		settings:  settings,
		validator: v,
		runner:    runner,
		installer: inst,
		tracer:    tracer,
		watcher:   watcher,
		logger:    log,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		detect:    detector.DetectEnvironment,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects the linear renderer.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithEnvironment replaces terminal detection.
func (a *App) WithEnvironment(env detector.Environment) *App {
	a.detect = func() detector.Environment { return env }
	return a
}

// Settings returns the effective settings.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// BuildOptions configuration for the Build method. Nil flags keep the
// configured default.
type BuildOptions struct {
	Name      string
	Icon      string
	OutputDir string
	BundleID  string
	OneFile   *bool
	Windowed  *bool
	Clean     *bool

	OutputMode     string
	Inspect        bool
	InspectOnError bool
	Watch          bool
	NoInstall      bool
}

// Input merges opts over the configured defaults.
func (a *App) Input(source string, opts BuildOptions) domain.RawInput {
	raw := a.settings.Input(source)
	raw.Name = opts.Name
	raw.Icon = opts.Icon
	if opts.OutputDir != "" {
		raw.OutputDir = opts.OutputDir
	}
	if opts.BundleID != "" {
		raw.BundleID = opts.BundleID
	}
	if opts.OneFile != nil {
		raw.OneFile = *opts.OneFile
	}
	if opts.Windowed != nil {
		raw.Windowed = *opts.Windowed
	}
	if opts.Clean != nil {
		raw.Clean = *opts.Clean
	}
	return raw
}

// Build packages source and reports progress through the TUI or the linear
// renderer. A session that does not succeed is returned joined with
// domain.ErrBuildFailed; the renderer has already shown why.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, source string, opts BuildOptions) error {
	mode := opts.OutputMode
	if mode == "" {
		mode = a.settings.OutputMode
	}
	if err := config.ValidateOutputMode(mode); err != nil {
		return err
	}

	raw := a.Input(source, opts)
	autoInstall := a.settings.AutoInstall && !opts.NoInstall

	// 1. Renderer
	var (
		renderer ports.Renderer
		tuiR     *tui.Renderer
		stopped  <-chan struct{}
	)
	if detector.ResolveMode(a.detect(), mode) == detector.ModeTUI {
		model := tui.NewModel(a.stderr, a.validator.Platform())
		teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		tuiR = tui.NewRenderer(model, a.settings.QueueSize, teaOpts...)
		renderer = tuiR
		stopped = tuiR.Done()
	} else {
		renderer = linear.NewRenderer(a.stdout, a.stderr, a.validator.Platform())
	}

	// 2. Orchestrator
	orch := orchestrator.New(
		a.validator, a.runner, a.installer, renderer, a.tracer, a.logger,
		orchestrator.WithTool(a.settings.ToolInvocation()),
		orchestrator.WithAutoInstall(autoInstall),
	)
	if tuiR != nil {
		tuiR.OnTrigger(func() {
			_, _ = orch.Submit(ctx, raw)
		})
	}

	// 3. Run renderer and sessions concurrently
	if err := renderer.Start(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(renderer.Wait)

	g.Go(func() error {
		keepOpen := opts.Inspect || opts.Watch
		defer func() {
			if !keepOpen {
				_ = renderer.Stop()
			}
		}()

		if autoInstall {
			a.ensureTool(gctx, renderer)
		}

		outcome, err := a.session(gctx, orch.Submit, raw, stopped)
		if err == nil && !outcome.Succeeded() {
			err = outcome.Err
			if err == nil {
				err = domain.ErrUnexpected
			}
		}
		if err != nil && opts.InspectOnError {
			keepOpen = true
		}

		if opts.Watch {
			werr := a.watch(gctx, orch, raw, renderer, stopped)
			if werr != nil {
				renderer.Notify(domain.ErrorNotice("Watch", werr.Error()))
				keepOpen = false
				return werr
			}
			keepOpen = false
			return nil
		}

		if err != nil {
			return errors.Join(domain.ErrBuildFailed, err)
		}
		return nil
	})

	return g.Wait()
}

// ensureTool installs the packaging tool before the first session when it is
// missing. Failures are logged; the session reports the missing tool itself.
func (a *App) ensureTool(ctx context.Context, p ports.Presenter) {
	if a.installer.Available(ctx) {
		return
	}

	p.AppendLog("PyInstaller not found. Installing...")
	w := orchestrator.NewLineWriter(p.AppendLog)
	_, err := installer.Ensure(ctx, a.installer, true, w)
	w.Flush()
	if err != nil {
		a.logger.Warn("startup install failed: " + err.Error())
	}
}

// submitFunc starts an orchestrator session.
type submitFunc func(context.Context, domain.RawInput) (*orchestrator.Session, error)

// session submits raw and waits for the outcome, the renderer to exit or ctx.
func (a *App) session(
	ctx context.Context,
	submit submitFunc,
	raw domain.RawInput,
	stopped <-chan struct{},
) (domain.BuildOutcome, error) {
	sess, err := submit(ctx, raw)
	if err != nil {
		return domain.BuildOutcome{}, err
	}

	select {
	case <-sess.Done():
		return sess.Outcome(), nil
	case <-stopped:
		return domain.BuildOutcome{}, zerr.New("interrupted")
	case <-ctx.Done():
		return domain.BuildOutcome{}, ctx.Err()
	}
}

// watch rebuilds whenever the source content changes. A change that arrives
// while another session runs, such as one started from the TUI, is rebuilt
// once that session ends. It returns when ctx is done or the renderer exits.
func (a *App) watch(
	ctx context.Context,
	orch *orchestrator.Orchestrator,
	raw domain.RawInput,
	renderer ports.Presenter,
	stopped <-chan struct{},
) error {
	if err := a.watcher.Start(ctx, raw.Source); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
		}
		cancel()
		_ = a.watcher.Stop()
	}()

	name := filepath.Base(raw.Source)
	renderer.AppendLog("")
	renderer.AppendLog("Watching " + name + " for changes...")

	for ev := range a.watcher.Events() {
		if ev.Operation == ports.OpRemove {
			renderer.AppendLog(name + " was removed. Waiting for it to come back...")
			continue
		}
		a.logger.Debug("source changed: " + ev.Path)

		if _, err := a.session(ctx, orch.SubmitWhenIdle, raw, stopped); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// Already reported by the orchestrator.
			continue
		}
		renderer.AppendLog("")
		renderer.AppendLog("Watching " + name + " for changes...")
	}
	return nil
}

// Setup checks for the packaging tool and installs it when missing.
func (a *App) Setup(ctx context.Context, w io.Writer) error {
	if a.installer.Available(ctx) {
		a.logger.Info(domain.PackagingToolName + " is already installed")
		return nil
	}

	a.logger.Info("installing " + domain.PackagingToolName + "...")
	installed, err := installer.Ensure(ctx, a.installer, true, w)
	if err != nil {
		return err
	}
	if !installed {
		return zerr.With(domain.ErrToolInstallFailed, "python", a.settings.Python)
	}
	a.logger.Info(domain.PackagingToolName + " installed")
	return nil
}

// Config writes the effective settings as YAML, preceded by the files they were read from.
func (a *App) Config(w io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	for _, path := range a.loader.ConfigFiles(cwd) {
		if _, err := io.WriteString(w, "# "+path+"\n"); err != nil {
			return err
		}
	}
	return config.Dump(w, a.settings)
}

// Close flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}
