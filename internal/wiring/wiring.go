// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pave/internal/adapters/buildfile"
	_ "go.trai.ch/pave/internal/adapters/cache"
	_ "go.trai.ch/pave/internal/adapters/command"
	_ "go.trai.ch/pave/internal/adapters/config"
	_ "go.trai.ch/pave/internal/adapters/logger"
	_ "go.trai.ch/pave/internal/adapters/report"
	_ "go.trai.ch/pave/internal/adapters/selector"
	_ "go.trai.ch/pave/internal/adapters/shell"
	_ "go.trai.ch/pave/internal/adapters/surface"
	// Register app nodes.
	_ "go.trai.ch/pave/internal/app"
)
