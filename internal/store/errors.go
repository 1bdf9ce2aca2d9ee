package store

import (
	"errors"
	"fmt"
)

// UnavailableError indicates the store could not be opened or reached.
// Queries against an unavailable store abort whole; there is no retry and
// no partial result.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// QueryError indicates the store failed while executing a primitive query.
// Op names the failing primitive for diagnostics.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// IsUnavailable reports whether err is (or wraps) an UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
