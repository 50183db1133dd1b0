package recipe

import "fmt"

const (
	defaultIndent   = 4
	defaultMaxDepth = 1000
)

// Option configures parsing and formatting.
type Option func(*options) error

type options struct {
	indent   *int
	maxDepth int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent returns an Option that sets the number of spaces used to indent
// children blocks. Zero selects the compact single-line layout.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("recipe: indent spaces cannot be negative")
		}
		o.indent = &spaces
		return nil
	}
}

// MaxDepth returns an Option that sets the maximum nesting depth of
// children blocks the parser accepts. This guards against pathological
// input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("recipe: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
