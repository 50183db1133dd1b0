package document

import (
	"errors"
	"fmt"
)

// Sentinel errors for query failures. A QueryError wraps one of these.
var (
	ErrMissingValue = errors.New("missing value")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrMissingChild = errors.New("missing child")
)

// QueryError reports a failed read from a node. Path locates the node
// from the root, e.g. "recipe.ingredient[2].amount[0]".
type QueryError struct {
	Path string
	Err  error
}

func (e *QueryError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }

// ParseError represents a single syntax error with its position.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
// This allows returning all syntax errors found during parsing at once.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	switch len(p) {
	case 0:
		return ""
	case 1:
		return "parsing error at " + p[0].Error()
	}
	return fmt.Sprintf("parsing error at %s (and %d more)", p[0].Error(), len(p)-1)
}
