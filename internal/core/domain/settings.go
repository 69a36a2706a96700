package domain

// Output modes accepted by Settings.OutputMode.
const (
	OutputModeAuto   = "auto"
	OutputModeTUI    = "tui"
	OutputModeLinear = "linear"
	OutputModeCI     = "ci"
)

// Settings are the effective defaults after every configuration layer was applied.
type Settings struct {
	// Python is the interpreter used to run and install the packaging tool.
	Python      string `mapstructure:"python" yaml:"python"`
	OneFile     bool   `mapstructure:"onefile" yaml:"onefile"`
	Windowed    bool   `mapstructure:"windowed" yaml:"windowed"`
	Clean       bool   `mapstructure:"clean" yaml:"clean"`
	BundleID    string `mapstructure:"bundle_id" yaml:"bundle_id"`
	OutDir      string `mapstructure:"out_dir" yaml:"out_dir"`
	AutoInstall bool   `mapstructure:"auto_install" yaml:"auto_install"`
	OutputMode  string `mapstructure:"output_mode" yaml:"output_mode"`
	// UsePTY runs the packaging tool attached to a pseudo-terminal.
	UsePTY    bool `mapstructure:"use_pty" yaml:"use_pty"`
	QueueSize int  `mapstructure:"queue_size" yaml:"queue_size"`
}

// DefaultSettings returns the built-in settings for platform p.
func DefaultSettings(p Platform) Settings {
	return Settings{
		Python:      p.DefaultPython(),
		OneFile:     true,
		Windowed:    true,
		Clean:       true,
		AutoInstall: true,
		OutputMode:  OutputModeAuto,
		QueueSize:   DefaultQueueSize,
	}
}

// ToolInvocation returns the prefix that runs the packaging tool.
func (s Settings) ToolInvocation() []string {
	return []string{s.Python, "-m", PackagingModule}
}

// Input returns a RawInput pre-filled with the configured defaults.
func (s Settings) Input(source string) RawInput {
	return RawInput{
		Source:    source,
		OutputDir: s.OutDir,
		OneFile:   s.OneFile,
		Windowed:  s.Windowed,
		Clean:     s.Clean,
		BundleID:  s.BundleID,
	}
}
