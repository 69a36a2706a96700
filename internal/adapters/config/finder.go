package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/buildfy/internal/core/domain"
)

// FindProjectConfig walks up from dir and returns the nearest project config file, or "".
func FindProjectConfig(dir string) string {
	for {
		for _, ext := range domain.ConfigExtensions {
			path := filepath.Join(dir, domain.ProjectConfigName+"."+ext)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// FindGlobalConfig returns the first config file in dir, or "".
func FindGlobalConfig(dir string) string {
	if dir == "" {
		return ""
	}
	for _, ext := range domain.ConfigExtensions {
		path := filepath.Join(dir, domain.GlobalConfigName+"."+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// DefaultGlobalDir returns <user config dir>/buildfy, or "" when it cannot be determined.
func DefaultGlobalDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, domain.AppName)
}
