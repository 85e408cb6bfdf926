package selector

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pave/internal/core/ports"
)

// NodeID is the unique identifier for the Selector Graft node.
const NodeID graft.ID = "adapter.selector"

func init() {
	graft.Register(graft.Node[ports.Selector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Selector, error) {
			return NewTerminal(os.Stdin, os.Stderr), nil
		},
	})
}
