package recipe

import "errors"

// ErrEmptyDocument is returned by Unmarshal when the input has no nodes.
var ErrEmptyDocument = errors.New("recipe: empty document")

// A DecodeError reports a failure to decode the top-level node Name. Err
// is usually a *document.QueryError carrying the path of the offending
// node.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return "recipe: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
