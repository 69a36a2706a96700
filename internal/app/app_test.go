package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildfy/internal/adapters/detector"
	"go.trai.ch/buildfy/internal/app"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/buildfy/internal/core/ports/mocks"
	"go.trai.ch/buildfy/internal/engine/validator"
	"go.uber.org/mock/gomock"
)

type fakeProcess struct {
	lines []string
	code  int
}

func (p *fakeProcess) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range p.lines {
			if !yield(line) {
				return
			}
		}
	}
}

func (p *fakeProcess) Wait() (int, error) {
	return p.code, nil
}

type testEnv struct {
	app       *app.App
	loader    *mocks.MockConfigLoader
	runner    *mocks.MockProcessRunner
	installer *mocks.MockToolInstaller
	watcher   *mocks.MockWatcher
	tracer    *mocks.MockTracer
	logger    *mocks.MockLogger
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	source    string
}

func newTestEnv(t *testing.T, settings domain.Settings) *testEnv {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	source := filepath.Join(t.TempDir(), "app.py")
	require.NoError(t, os.WriteFile(source, []byte("print('hello')\n"), 0o600))

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) { return len(p), nil }).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	env := &testEnv{
		loader:    mocks.NewMockConfigLoader(ctrl),
		runner:    mocks.NewMockProcessRunner(ctrl),
		installer: mocks.NewMockToolInstaller(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		tracer:    tracer,
		logger:    logger,
		stdout:    new(bytes.Buffer),
		stderr:    new(bytes.Buffer),
		source:    source,
	}
	env.app = app.New(
		env.loader, settings, validator.New(domain.PlatformOther),
		env.runner, env.installer, env.tracer, env.watcher, env.logger,
	).
		WithOutput(env.stdout, env.stderr).
		WithEnvironment(detector.Environment{IsCI: true})

	return env
}

func defaultSettings() domain.Settings {
	s := domain.DefaultSettings(domain.PlatformOther)
	s.Python = "python3"
	return s
}

func TestBuild_Success(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	env.installer.EXPECT().Available(gomock.Any()).Return(true).Times(2)
	env.runner.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.CommandLine, _ string) (ports.Process, error) {
			assert.Equal(t, []string{"python3", "-m", "PyInstaller"}, cmd.Tool)
			assert.Contains(t, cmd.Args, "--onefile")
			return &fakeProcess{lines: []string{"INFO: Building EXE"}}, nil
		},
	)

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{})
	require.NoError(t, err)

	assert.Contains(t, env.stdout.String(), "INFO: Building EXE")
	assert.Contains(t, env.stdout.String(), "Build completed successfully.")
	assert.Contains(t, env.stderr.String(), "Success: Build completed successfully.")
}

func TestBuild_FlagsOverrideSettings(t *testing.T) {
	env := newTestEnv(t, defaultSettings())
	off := false

	env.installer.EXPECT().Available(gomock.Any()).Return(true).Times(2)
	env.runner.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.CommandLine, _ string) (ports.Process, error) {
			assert.NotContains(t, cmd.Args, "--onefile")
			assert.Contains(t, cmd.Args, "MyApp")
			return &fakeProcess{}, nil
		},
	)

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{Name: "MyApp", OneFile: &off})
	require.NoError(t, err)
}

func TestBuild_ToolFailure(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	env.installer.EXPECT().Available(gomock.Any()).Return(true).Times(2)
	env.runner.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&fakeProcess{lines: []string{"ERROR: boom"}, code: 1}, nil)

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorContains(t, err, domain.ErrToolExecutionFailed.Error())
	assert.Contains(t, env.stdout.String(), "Build failed with exit code 1.")
}

func TestBuild_InvalidInput(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	env.installer.EXPECT().Available(gomock.Any()).Return(true)

	err := env.app.Build(context.Background(), filepath.Join(t.TempDir(), "missing.py"), app.BuildOptions{})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, env.stderr.String(), "Invalid input")
}

func TestBuild_InvalidOutputMode(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{OutputMode: "fancy"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidOutputMode.Error())
	assert.Empty(t, env.stdout.String())
}

func TestBuild_StartupInstall(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	gomock.InOrder(
		env.installer.EXPECT().Available(gomock.Any()).Return(false),
		env.installer.EXPECT().Available(gomock.Any()).Return(false),
		env.installer.EXPECT().Install(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w io.Writer) error {
				_, _ = io.WriteString(w, "Collecting pyinstaller\nSuccessfully installed")
				return nil
			},
		),
		env.installer.EXPECT().Available(gomock.Any()).Return(true),
		env.installer.EXPECT().Available(gomock.Any()).Return(true),
	)
	env.runner.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(&fakeProcess{}, nil)

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{})
	require.NoError(t, err)

	out := env.stdout.String()
	assert.Contains(t, out, "PyInstaller not found. Installing...\nCollecting pyinstaller\nSuccessfully installed\n")
}

func TestBuild_NoInstallSkipsStartupCheck(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	env.installer.EXPECT().Available(gomock.Any()).Return(false)

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{NoInstall: true})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	require.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Contains(t, env.stdout.String(), "Run `buildfy setup` to install it, then build again.")
}

func TestBuild_TUI(t *testing.T) {
	env := newTestEnv(t, defaultSettings())
	env.app.
		WithEnvironment(detector.Environment{IsTTY: true}).
		WithTeaOptions(tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutRenderer())

	env.installer.EXPECT().Available(gomock.Any()).Return(true).Times(2)
	env.runner.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&fakeProcess{lines: []string{"INFO: done"}}, nil)

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{})
	require.NoError(t, err)
	assert.Empty(t, env.stdout.String())
}

func TestBuild_Watch(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	env.installer.EXPECT().Available(gomock.Any()).Return(true).Times(3)
	env.runner.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(&fakeProcess{}, nil).Times(2)
	env.watcher.EXPECT().Start(gomock.Any(), env.source).Return(nil)
	env.watcher.EXPECT().Events().Return(func(yield func(ports.WatchEvent) bool) {
		if !yield(ports.WatchEvent{Path: env.source, Operation: ports.OpRemove}) {
			return
		}
		yield(ports.WatchEvent{Path: env.source, Operation: ports.OpWrite})
	})
	env.watcher.EXPECT().Stop().Return(nil).AnyTimes()

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{Watch: true})
	require.NoError(t, err)

	out := env.stdout.String()
	assert.Contains(t, out, "Watching app.py for changes...")
	assert.Contains(t, out, "app.py was removed. Waiting for it to come back...")
}

// gatedProcess produces no output until gate is closed.
type gatedProcess struct {
	gate chan struct{}
}

func (p *gatedProcess) Lines() iter.Seq[string] {
	return func(func(string) bool) {
		<-p.gate
	}
}

func (p *gatedProcess) Wait() (int, error) {
	return 0, nil
}

func TestBuild_WatchChangeDuringTriggeredBuild(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	keys, press := io.Pipe()
	env.app.
		WithEnvironment(detector.Environment{IsTTY: true}).
		WithTeaOptions(tea.WithInput(keys), tea.WithOutput(io.Discard), tea.WithoutRenderer())

	triggered := &gatedProcess{gate: make(chan struct{})}
	running := make(chan struct{})

	var starts atomic.Int32
	env.installer.EXPECT().Available(gomock.Any()).Return(true).Times(4)
	env.runner.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.CommandLine, string) (ports.Process, error) {
			if starts.Add(1) == 2 {
				close(running)
				return triggered, nil
			}
			return &fakeProcess{}, nil
		},
	).Times(3)
	env.watcher.EXPECT().Start(gomock.Any(), env.source).Return(nil)
	env.watcher.EXPECT().Events().Return(func(yield func(ports.WatchEvent) bool) {
		// Start a session from the build key, then change the source while it runs.
		_, _ = press.Write([]byte("b"))
		_ = press.Close()
		select {
		case <-running:
		case <-time.After(5 * time.Second):
			t.Error("build key did not start a session")
			return
		}
		go func() {
			time.Sleep(50 * time.Millisecond)
			close(triggered.gate)
		}()
		yield(ports.WatchEvent{Path: env.source, Operation: ports.OpWrite})
	})
	env.watcher.EXPECT().Stop().Return(nil).AnyTimes()

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{Watch: true})
	require.NoError(t, err)
	assert.Equal(t, int32(3), starts.Load())
}

func TestBuild_WatchStartFailure(t *testing.T) {
	env := newTestEnv(t, defaultSettings())

	env.installer.EXPECT().Available(gomock.Any()).Return(true).Times(2)
	env.runner.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(&fakeProcess{}, nil)
	env.watcher.EXPECT().Start(gomock.Any(), env.source).Return(domain.ErrWatcherStartFailed)

	err := env.app.Build(context.Background(), env.source, app.BuildOptions{Watch: true})
	require.ErrorIs(t, err, domain.ErrWatcherStartFailed)
	assert.Contains(t, env.stderr.String(), "Watch: "+domain.ErrWatcherStartFailed.Error())
}

func TestInput_MergesDefaults(t *testing.T) {
	settings := defaultSettings()
	settings.OutDir = "out"
	settings.BundleID = "com.example.default"
	env := newTestEnv(t, settings)

	on := true
	off := false
	raw := env.app.Input("main.py", app.BuildOptions{
		Name:     "Tool",
		Icon:     "icon.png",
		OneFile:  &off,
		Windowed: &on,
	})

	assert.Equal(t, domain.RawInput{
		Source:    "main.py",
		Name:      "Tool",
		Icon:      "icon.png",
		OutputDir: "out",
		OneFile:   false,
		Windowed:  true,
		Clean:     true,
		BundleID:  "com.example.default",
	}, raw)

	raw = env.app.Input("main.py", app.BuildOptions{OutputDir: "custom", BundleID: "com.example.cli"})
	assert.Equal(t, "custom", raw.OutputDir)
	assert.Equal(t, "com.example.cli", raw.BundleID)
	assert.True(t, raw.OneFile)
}

func TestSetup(t *testing.T) {
	t.Run("already installed", func(t *testing.T) {
		env := newTestEnv(t, defaultSettings())
		env.installer.EXPECT().Available(gomock.Any()).Return(true)
		env.logger.EXPECT().Info("PyInstaller is already installed")

		require.NoError(t, env.app.Setup(context.Background(), io.Discard))
	})

	t.Run("installs", func(t *testing.T) {
		env := newTestEnv(t, defaultSettings())
		var out bytes.Buffer

		gomock.InOrder(
			env.installer.EXPECT().Available(gomock.Any()).Return(false),
			env.installer.EXPECT().Available(gomock.Any()).Return(false),
			env.installer.EXPECT().Install(gomock.Any(), &out).DoAndReturn(
				func(_ context.Context, w io.Writer) error {
					_, _ = io.WriteString(w, "Successfully installed pyinstaller\n")
					return nil
				},
			),
			env.installer.EXPECT().Available(gomock.Any()).Return(true),
		)
		env.logger.EXPECT().Info("installing PyInstaller...")
		env.logger.EXPECT().Info("PyInstaller installed")

		require.NoError(t, env.app.Setup(context.Background(), &out))
		assert.Equal(t, "Successfully installed pyinstaller\n", out.String())
	})

	t.Run("install error", func(t *testing.T) {
		env := newTestEnv(t, defaultSettings())
		env.installer.EXPECT().Available(gomock.Any()).Return(false).Times(2)
		env.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(errors.New("pip failed"))
		env.logger.EXPECT().Info(gomock.Any())

		err := env.app.Setup(context.Background(), io.Discard)
		assert.ErrorContains(t, err, "pip failed")
	})

	t.Run("still missing after install", func(t *testing.T) {
		env := newTestEnv(t, defaultSettings())
		env.installer.EXPECT().Available(gomock.Any()).Return(false).Times(3)
		env.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(nil)
		env.logger.EXPECT().Info(gomock.Any())

		err := env.app.Setup(context.Background(), io.Discard)
		assert.ErrorContains(t, err, domain.ErrToolInstallFailed.Error())
	})
}

func TestConfig(t *testing.T) {
	env := newTestEnv(t, defaultSettings())
	env.loader.EXPECT().ConfigFiles(gomock.Any()).Return([]string{"/home/user/.config/buildfy/config.yaml"})

	var out bytes.Buffer
	require.NoError(t, env.app.Config(&out))

	assert.Contains(t, out.String(), "# /home/user/.config/buildfy/config.yaml\n")
	assert.Contains(t, out.String(), "python: python3\n")
	assert.Contains(t, out.String(), "onefile: true\n")
}

func TestClose(t *testing.T) {
	env := newTestEnv(t, defaultSettings())
	env.tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)

	require.NoError(t, env.app.Close(context.Background()))
}
