package ports

import (
	"context"

	"go.trai.ch/pave/internal/core/domain"
)

// TargetResolver maps a source file to the ordered target list declared by
// its owning build-definition file.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type TargetResolver interface {
	// Resolve returns the targets for the build file owning sourceFile, the
	// synthetic wildcard target first. The list is served from cache when
	// the entry is at least as fresh as the build file, and regenerated via
	// the tool's list subcommand otherwise.
	Resolve(ctx context.Context, sourceFile string) ([]domain.Target, error)

	// Refresh regenerates the entry for sourceFile unconditionally.
	Refresh(ctx context.Context, sourceFile string) ([]domain.Target, error)
}
