package buildfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pave/internal/adapters/config"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
)

// NodeID is the unique identifier for the Locator Graft node.
const NodeID graft.ID = "adapter.buildfile_locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Locator, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(cfg), nil
		},
	})
}
