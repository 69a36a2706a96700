package domain

import (
	"slices"

	"al.essio.dev/pkg/shellescape"
)

// CommandLine is the ordered invocation of the packaging tool.
type CommandLine struct {
	// Tool is the invocation prefix, e.g. python3 -m PyInstaller.
	Tool []string
	// Args are the arguments passed to the tool.
	Args []string
}

// Tokens returns the full argv: Tool followed by Args.
func (c CommandLine) Tokens() []string {
	return slices.Concat(c.Tool, c.Args)
}

// String renders the command line shell-quoted for display.
func (c CommandLine) String() string {
	return shellescape.QuoteCommand(c.Tokens())
}
