package command

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pave/internal/adapters/config"
	"go.trai.ch/pave/internal/core/domain"
)

// NodeID is the unique identifier for the Builder Graft node.
const NodeID graft.ID = "adapter.command_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(cfg), nil
		},
	})
}
