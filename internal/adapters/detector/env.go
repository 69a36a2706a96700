// Package detector picks the presentation mode for the current terminal.
package detector

import (
	"os"

	"go.trai.ch/buildfy/internal/core/domain"
	"golang.org/x/term"
)

// OutputMode is the presentation used for a build.
type OutputMode int

const (
	// ModeTUI is the interactive full-screen renderer.
	ModeTUI OutputMode = iota
	// ModeLinear is the line-oriented renderer for pipes and CI logs.
	ModeLinear
)

func (m OutputMode) String() string {
	if m == ModeTUI {
		return domain.OutputModeTUI
	}
	return domain.OutputModeLinear
}

// Environment describes the terminal buildfy runs in.
type Environment struct {
	// IsTTY reports whether stdout is a terminal.
	IsTTY bool
	// IsCI reports whether a CI system was detected.
	IsCI bool
}

// DetectEnvironment inspects stdout and the CI variable.
func DetectEnvironment() Environment {
	ci := os.Getenv("CI")
	return Environment{
		IsTTY: term.IsTerminal(int(os.Stdout.Fd())),
		IsCI:  ci == "true" || ci == "1",
	}
}

// Recommended is the mode chosen when the user did not pick one.
func (e Environment) Recommended() OutputMode {
	if !e.IsTTY || e.IsCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the configured output mode to the detected environment.
// mode is one of auto, tui, linear or ci; anything else falls back to detection.
func ResolveMode(env Environment, mode string) OutputMode {
	switch mode {
	case domain.OutputModeTUI:
		return ModeTUI
	case domain.OutputModeLinear, domain.OutputModeCI:
		return ModeLinear
	default:
		return env.Recommended()
	}
}
