package surface

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	progrocksurface "go.trai.ch/pave/internal/adapters/surface/progrock"
	"go.trai.ch/pave/internal/core/ports"
	"golang.org/x/term"
)

// NodeID is the unique identifier for the Surface Graft node.
const NodeID graft.ID = "adapter.surface"

func init() {
	graft.Register(graft.Node[ports.Surface]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Surface, error) {
			return Detect(), nil
		},
	})
}

// Detect picks the surface for the current terminal: the progrock vertex
// surface on a TTY, the linear surface otherwise.
func Detect() ports.Surface {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return progrocksurface.New(progrocksurface.NewConsoleWriter(os.Stderr))
	}
	return NewLinear(nil, nil)
}
