package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceRequired is returned when no source script was supplied.
	ErrSourceRequired = zerr.New("please select a Python file")
	// ErrSourceNotFound is returned when the source script does not exist or is not a regular file.
	ErrSourceNotFound = zerr.New("selected Python file does not exist")
	// ErrSourceNotPython is returned when the source script does not carry the .py extension.
	ErrSourceNotPython = zerr.New("selected file must be a .py file")
	// ErrNameRequired is returned when no application name could be resolved.
	ErrNameRequired = zerr.New("please provide an app name")
	// ErrIconNotICO is returned on Windows when the icon is not a .ico file.
	ErrIconNotICO = zerr.New("Windows icon must be a .ico file")
	// ErrIconNotICNS is returned on macOS when the icon is not a .icns file.
	ErrIconNotICNS = zerr.New("macOS icon must be a .icns file")
	// ErrIconNotFound is returned when the icon path does not exist.
	ErrIconNotFound = zerr.New("icon path does not exist")
	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")
	// ErrInvalidInput is the umbrella error for every validation failure.
	ErrInvalidInput = zerr.New("invalid input")
	// ErrAlreadyBuilding is returned when a build is requested while another one is in flight.
	ErrAlreadyBuilding = zerr.New("a build is already in progress")
	// ErrToolNotFound is returned when the packaging tool cannot be located.
	ErrToolNotFound = zerr.New("packaging tool not found")
	// ErrToolInstallFailed is returned when the packaging tool could not be installed.
	ErrToolInstallFailed = zerr.New("failed to install packaging tool")
	// ErrToolExecutionFailed is returned when the packaging tool exits with a non-zero code.
	ErrToolExecutionFailed = zerr.New("packaging tool exited with a non-zero code")
	// ErrProcessStartFailed is returned when the child process cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start process")
	// ErrUnexpected is returned for any other failure during a build session.
	ErrUnexpected = zerr.New("unexpected error")
	// ErrBuildFailed is returned to the CLI when a build session did not succeed.
	ErrBuildFailed = zerr.New("build failed")
	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")
	// ErrInvalidOutputMode is returned when the output mode is not one of auto, tui, linear or ci.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'tui', 'linear' or 'ci'")
	// ErrWatcherStartFailed is returned when the source watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
