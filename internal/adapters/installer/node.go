package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildfy/internal/adapters/config"
	"go.trai.ch/buildfy/internal/adapters/logger"
	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/buildfy/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.ToolInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ToolInstaller, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewPip(settings.Python, log), nil
		},
	})
}
