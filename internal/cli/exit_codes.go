package cli

import "fmt"

// Exit codes for the claude-notifier CLI. Hook invocations keep the
// original contract: 0 for success and recognized no-ops, 1 for bad
// input or storage failures. Delivery failures never affect the code.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates malformed input, an unknown event, or a
	// storage failure
	ExitFailure = 1
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitFailure
}
