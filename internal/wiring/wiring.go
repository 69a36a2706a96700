// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildfy/internal/adapters/config"
	_ "go.trai.ch/buildfy/internal/adapters/installer"
	_ "go.trai.ch/buildfy/internal/adapters/logger"
	_ "go.trai.ch/buildfy/internal/adapters/shell"
	_ "go.trai.ch/buildfy/internal/adapters/telemetry"
	_ "go.trai.ch/buildfy/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/buildfy/internal/app"
	_ "go.trai.ch/buildfy/internal/engine/validator"
)
