package ports

import "go.trai.ch/pave/internal/core/domain"

// Locator finds the build-definition file owning a source path.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Locate walks upward from the directory containing startPath and
	// returns the nearest directory holding the configured marker file.
	// Returns domain.ErrBuildFileNotFound when the filesystem root or a
	// repository boundary is reached first.
	Locate(startPath string) (domain.BuildFileLocation, error)
}
