package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pave/internal/adapters/buildfile"
	"go.trai.ch/pave/internal/adapters/command"
	"go.trai.ch/pave/internal/adapters/config"
	"go.trai.ch/pave/internal/adapters/logger"
	"go.trai.ch/pave/internal/adapters/shell"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
)

// NodeID is the unique identifier for the TargetCache Graft node.
const NodeID graft.ID = "adapter.target_cache"

func init() {
	graft.Register(graft.Node[ports.TargetResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			buildfile.NodeID,
			command.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.TargetResolver, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[*command.Builder](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, locator, builder, runner, log), nil
		},
	})
}
