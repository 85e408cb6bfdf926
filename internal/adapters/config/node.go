package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the Config Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Config, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return domain.Config{}, zerr.Wrap(err, "failed to get working directory")
			}
			return NewLoader().Load(cwd)
		},
	})
}
