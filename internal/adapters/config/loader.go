// Package config resolves buildfy's settings from defaults, config files and the environment.
package config

import (
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var outputModes = []string{
	domain.OutputModeAuto,
	domain.OutputModeTUI,
	domain.OutputModeLinear,
	domain.OutputModeCI,
}

// Loader implements ports.ConfigLoader with viper. Layers, lowest priority
// first: built-in defaults, the global config file, the nearest project config
// file and BUILDFY_* environment variables. Nothing is ever written back.
type Loader struct {
	logger    ports.Logger
	platform  domain.Platform
	globalDir string
}

// Option configures a Loader.
type Option func(*Loader)

// WithGlobalDir overrides the directory searched for the global config file.
func WithGlobalDir(dir string) Option {
	return func(l *Loader) {
		l.globalDir = dir
	}
}

// WithPlatform overrides the platform used for defaults.
func WithPlatform(p domain.Platform) Option {
	return func(l *Loader) {
		l.platform = p
	}
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, opts ...Option) *Loader {
	l := &Loader{
		logger:    logger,
		platform:  domain.HostPlatform(),
		globalDir: DefaultGlobalDir(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ConfigFiles returns the config files that apply to cwd, lowest priority first.
func (l *Loader) ConfigFiles(cwd string) []string {
	var files []string
	if global := FindGlobalConfig(l.globalDir); global != "" {
		files = append(files, global)
	}
	if abs, err := filepath.Abs(cwd); err == nil {
		if project := FindProjectConfig(abs); project != "" && !slices.Contains(files, project) {
			files = append(files, project)
		}
	}
	return files
}

// Load resolves the settings for cwd.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	v := viper.New()
	setDefaults(v, domain.DefaultSettings(l.platform))

	for _, path := range l.ConfigFiles(cwd) {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		l.logger.Debug("loaded config " + path)
	}

	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	return normalize(settings)
}

func setDefaults(v *viper.Viper, d domain.Settings) {
	v.SetDefault("python", d.Python)
	v.SetDefault("onefile", d.OneFile)
	v.SetDefault("windowed", d.Windowed)
	v.SetDefault("clean", d.Clean)
	v.SetDefault("bundle_id", d.BundleID)
	v.SetDefault("out_dir", d.OutDir)
	v.SetDefault("auto_install", d.AutoInstall)
	v.SetDefault("output_mode", d.OutputMode)
	v.SetDefault("use_pty", d.UsePTY)
	v.SetDefault("queue_size", d.QueueSize)
}

func normalize(s domain.Settings) (domain.Settings, error) {
	s.Python = strings.TrimSpace(s.Python)
	s.OutputMode = strings.ToLower(strings.TrimSpace(s.OutputMode))

	if s.Python == "" {
		return domain.Settings{}, zerr.With(domain.ErrConfigReadFailed, "reason", "python must not be empty")
	}
	if err := ValidateOutputMode(s.OutputMode); err != nil {
		return domain.Settings{}, err
	}
	if s.QueueSize <= 0 {
		s.QueueSize = domain.DefaultQueueSize
	}
	return s, nil
}

// ValidateOutputMode returns domain.ErrInvalidOutputMode for an unknown mode.
func ValidateOutputMode(mode string) error {
	if slices.Contains(outputModes, mode) {
		return nil
	}
	return zerr.With(domain.ErrInvalidOutputMode, "mode", mode)
}

// Dump writes s as YAML.
func Dump(w io.Writer, s domain.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return zerr.Wrap(err, "failed to encode settings")
	}
	return enc.Close()
}
