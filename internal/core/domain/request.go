package domain

// RawInput holds the build parameters exactly as the user supplied them.
type RawInput struct {
	Source    string
	Name      string
	Icon      string
	OutputDir string
	OneFile   bool
	Windowed  bool
	Clean     bool
	BundleID  string
}

// BuildRequest is a validated, immutable snapshot of a build's parameters.
type BuildRequest struct {
	// Source is the trimmed path to an existing .py file.
	Source string
	// Name is the application name; never empty.
	Name string
	// Icon is an existing icon path, or empty.
	Icon string
	// OutputDir is an existing directory, or empty for the working directory.
	OutputDir string
	OneFile   bool
	Windowed  bool
	Clean     bool
	// BundleID is only set when Platform is PlatformMacOS.
	BundleID string
	Platform Platform
}
