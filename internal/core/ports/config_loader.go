package ports

import "go.trai.ch/buildfy/internal/core/domain"

// ConfigLoader defines the interface for loading the effective settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the settings for the given working directory.
	Load(cwd string) (domain.Settings, error)

	// ConfigFiles returns the config files that contributed to the settings, lowest priority first.
	ConfigFiles(cwd string) []string
}
