package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands. Any failure - missing input, malformed
// query, store fault - exits 1; only a fully written result exits 0.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError is an error carrying an exit code and the name of the failing
// stage, so a user can tell a parse failure from a build or evaluate
// failure.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code and stage message.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Non-ExitError values
// map to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
