package ports

import (
	"context"
	"io"
)

// ToolInstaller checks for and installs the packaging tool.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type ToolInstaller interface {
	// Available reports whether the packaging tool can be imported.
	Available(ctx context.Context) bool
	// Install installs the packaging tool, streaming installer output to w.
	Install(ctx context.Context, w io.Writer) error
}
