package domain

import "path/filepath"

const (
	// AppName is the name used for the config directory and environment prefix.
	AppName = "buildfy"

	// ProjectConfigName is the base name of the per-project config file.
	ProjectConfigName = ".buildfy"

	// GlobalConfigName is the base name of the config file in the user config directory.
	GlobalConfigName = "config"

	// EnvPrefix is the prefix of environment variables overriding config keys.
	EnvPrefix = "BUILDFY"

	// DistDirName is the directory the packaging tool writes artifacts to.
	DistDirName = "dist"

	// WorkDirName is the directory the packaging tool uses for intermediate files.
	WorkDirName = "build"

	// PackagingToolName is the display name of the packaging tool.
	PackagingToolName = "PyInstaller"

	// PackagingModule is the Python module that runs the packaging tool.
	PackagingModule = "PyInstaller"

	// PackagingPackage is the pip package providing the packaging tool.
	PackagingPackage = "pyinstaller"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// DefaultQueueSize is the capacity of the presentation message queue.
	DefaultQueueSize = 1024
)

// ConfigExtensions lists the config file formats looked up, in priority order.
var ConfigExtensions = []string{"yml", "yaml", "json", "toml"}

// DistPath returns the artifact directory under base.
func DistPath(base string) string {
	return filepath.Join(base, DistDirName)
}

// WorkPath returns the intermediate directory under base.
func WorkPath(base string) string {
	return filepath.Join(base, WorkDirName)
}
