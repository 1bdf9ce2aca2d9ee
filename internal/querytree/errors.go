package querytree

import (
	"errors"
	"fmt"
)

// MalformedQueryError reports a structural or validation failure in a query
// description. Path identifies the offending node, e.g. "query.operator_and[1]".
type MalformedQueryError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *MalformedQueryError) Error() string {
	return fmt.Sprintf("malformed query at %s: %s", e.Path, e.Message)
}

// IsMalformed reports whether err is (or wraps) a MalformedQueryError.
func IsMalformed(err error) bool {
	var me *MalformedQueryError
	return errors.As(err, &me)
}
