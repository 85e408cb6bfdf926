package ports

// Selector is the host-provided choice capability. The core never decides
// how choices are presented.
//
//go:generate go run go.uber.org/mock/mockgen -source=selector.go -destination=mocks/mock_selector.go -package=mocks
type Selector interface {
	// SelectOne presents choices and returns the chosen element.
	// Cancellation returns domain.ErrSelectionAborted.
	SelectOne(prompt string, choices []string) (string, error)
}
