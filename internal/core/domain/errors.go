package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildFileNotFound is returned when no build-definition marker file
	// exists in any ancestor directory of the requested path.
	ErrBuildFileNotFound = zerr.New("build file not found")

	// ErrSpawnFailed is returned when the external tool process could not be
	// started at all (missing executable, permission denied).
	ErrSpawnFailed = zerr.New("failed to spawn process")

	// ErrListingFailed is returned when a target-listing invocation exits
	// nonzero and no usable cache entry exists.
	ErrListingFailed = zerr.New("target listing failed")

	// ErrExecutionFailed is returned when a build/test/run invocation exits
	// nonzero. It is surfaced through the results surface, not thrown.
	ErrExecutionFailed = zerr.New("execution failed")

	// ErrFormatFailed is returned when the external formatter rejects the
	// document.
	ErrFormatFailed = zerr.New("formatting failed")

	// ErrConfigNotFound is returned when no pave.yaml exists in the working
	// directory or any of its ancestors.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrNoTargets is returned when a resolve produced an empty target list
	// and there is nothing to select from.
	ErrNoTargets = zerr.New("no targets found")

	// ErrSelectionAborted is returned when the user cancels target selection.
	ErrSelectionAborted = zerr.New("selection aborted")

	// ErrKilled is returned when a streamed invocation was terminated before
	// it resolved an exit status.
	ErrKilled = zerr.New("process killed")
)
