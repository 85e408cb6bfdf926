package domain

// RunState describes the lifecycle of a streamed invocation. A killed run is
// recorded distinctly so it can never be confused with a zero exit.
type RunState int32

const (
	// RunPending means the process has not been started yet.
	RunPending RunState = iota
	// RunActive means the process is running.
	RunActive
	// RunSucceeded means the process exited zero.
	RunSucceeded
	// RunFailed means the process exited nonzero.
	RunFailed
	// RunKilled means the process was terminated before resolving an exit
	// status.
	RunKilled
)

func (s RunState) String() string {
	switch s {
	case RunPending:
		return "pending"
	case RunActive:
		return "active"
	case RunSucceeded:
		return "succeeded"
	case RunFailed:
		return "failed"
	case RunKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is final.
func (s RunState) Terminal() bool {
	return s == RunSucceeded || s == RunFailed || s == RunKilled
}
