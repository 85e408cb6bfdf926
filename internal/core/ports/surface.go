package ports

import "io"

// Surface is the host-provided results surface. Each invocation opens one
// session; output is appended in arrival order.
//
//go:generate go run go.uber.org/mock/mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks
type Surface interface {
	// Open creates a session named after the invocation being displayed.
	Open(name string) Session
}

// Session displays one invocation's output and terminal status.
type Session interface {
	// Stdout returns the sink for standard output.
	Stdout() io.Writer

	// Stderr returns the sink for standard error.
	Stderr() io.Writer

	// Done marks the session finished. A nil error renders a success
	// marker, otherwise a failure marker with the error.
	Done(err error)

	// Dismiss hides the session without a terminal marker. Used by the
	// auto-dismiss-on-success policy.
	Dismiss()
}
