package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pave/internal/adapters/command"
	"go.trai.ch/pave/internal/adapters/config"
	"go.trai.ch/pave/internal/adapters/logger"
	"go.trai.ch/pave/internal/adapters/shell"
	"go.trai.ch/pave/internal/adapters/surface"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
)

// NodeID is the unique identifier for the Reporter Graft node.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[*Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			command.NodeID,
			shell.NodeID,
			surface.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Reporter, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
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
			surf, err := graft.Dep[ports.Surface](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReporter(cfg, builder, runner, surf, log), nil
		},
	})
}
