package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pave/internal/adapters/cache"
	"go.trai.ch/pave/internal/adapters/config"
	"go.trai.ch/pave/internal/adapters/logger"
	"go.trai.ch/pave/internal/adapters/report"
	"go.trai.ch/pave/internal/adapters/selector"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft
	// node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			report.NodeID,
			selector.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.TargetResolver](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[*report.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			sel, err := graft.Dep[ports.Selector](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, resolver, reporter, sel), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
