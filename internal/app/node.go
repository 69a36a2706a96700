package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildfy/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildfy/internal/adapters/installer" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildfy/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildfy/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/buildfy/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildfy/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
	"go.trai.ch/buildfy/internal/engine/validator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			validator.NodeID,
			shell.NodeID,
			installer.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	v, err := graft.Dep[*validator.Validator](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}

	inst, err := graft.Dep[ports.ToolInstaller](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, settings, v, runner, inst, tracer, w, log), nil
}
