// Package installer checks for and installs PyInstaller through pip.
package installer

import (
	"context"
	"io"
	"os/exec"

	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pip implements ports.ToolInstaller for a Python interpreter.
type Pip struct {
	python string
	logger ports.Logger
}

// NewPip creates an installer that uses the given interpreter.
func NewPip(python string, logger ports.Logger) *Pip {
	return &Pip{python: python, logger: logger}
}

// Available reports whether the interpreter can import the packaging module.
// A missing interpreter counts as unavailable.
func (p *Pip) Available(ctx context.Context) bool {
	//nolint:gosec // interpreter comes from configuration
	cmd := exec.CommandContext(ctx, p.python, "-c", "import "+domain.PackagingModule)
	err := cmd.Run()
	if err != nil {
		p.logger.Debug(domain.PackagingToolName + " is not importable with " + p.python + ": " + err.Error())
		return false
	}
	return true
}

// Install runs pip install, streaming pip's output to w.
func (p *Pip) Install(ctx context.Context, w io.Writer) error {
	//nolint:gosec // interpreter comes from configuration
	cmd := exec.CommandContext(ctx, p.python, "-m", "pip", "install", domain.PackagingPackage)
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Run(); err != nil {
		installErr := zerr.Wrap(err, domain.ErrToolInstallFailed.Error())
		installErr = zerr.With(installErr, "python", p.python)
		return zerr.With(installErr, "package", domain.PackagingPackage)
	}

	return nil
}

// Ensure installs the packaging tool when it is missing and autoInstall is set.
// It reports whether the tool is available afterwards.
func Ensure(ctx context.Context, installer ports.ToolInstaller, autoInstall bool, w io.Writer) (bool, error) {
	if installer.Available(ctx) {
		return true, nil
	}
	if !autoInstall {
		return false, nil
	}
	if err := installer.Install(ctx, w); err != nil {
		return false, err
	}
	return installer.Available(ctx), nil
}
