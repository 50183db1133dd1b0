package document

import (
	"fmt"
	"strconv"
)

// Reader is a cursor over a node. Positional arguments are consumed in
// order by Next; properties and children are looked up by name and do
// not move the cursor.
//
// Readers for children extend the parent's path, so every error a Reader
// returns names the exact node it came from.
type Reader struct {
	node *Node
	path string
	args []Value
	pos  int
}

// NewReader returns a Reader positioned at the first argument of n.
func NewReader(n *Node) *Reader {
	return newReader(n, n.Name)
}

func newReader(n *Node, path string) *Reader {
	return &Reader{node: n, path: path, args: n.Arguments()}
}

// Node returns the node being read.
func (r *Reader) Node() *Node { return r.node }

// Path returns the location of the node from the root of the tree.
func (r *Reader) Path() string { return r.path }

// Remaining returns the number of arguments not yet consumed.
func (r *Reader) Remaining() int { return len(r.args) - r.pos }

// Mark returns the current cursor position for a later Reset.
func (r *Reader) Mark() int { return r.pos }

// Reset moves the cursor back to a position obtained from Mark.
func (r *Reader) Reset(mark int) {
	if mark < 0 || mark > len(r.args) {
		return
	}
	r.pos = mark
}

// Next consumes and returns the next positional argument.
func (r *Reader) Next() (Value, error) {
	if r.pos >= len(r.args) {
		return Value{}, r.errorf("%w: argument %d", ErrMissingValue, r.pos)
	}
	v := r.args[r.pos]
	r.pos++
	return v, nil
}

// NextString consumes the next positional argument, which must be a string.
func (r *Reader) NextString() (string, error) {
	v, err := r.Next()
	if err != nil {
		return "", err
	}
	if v.Kind != KindString {
		return "", r.Mismatch(v, KindString.String())
	}
	return v.Str, nil
}

// Mismatch returns a type mismatch error for v, the value most recently
// returned by Next.
func (r *Reader) Mismatch(v Value, want string) error {
	return r.errorf("%w: argument %d: expected %s, got %s %s", ErrTypeMismatch, r.pos-1, want, v.Kind, v)
}

// Prop returns the named property, if present.
func (r *Reader) Prop(name string) (Value, bool) {
	return r.node.Property(name)
}

// PropString returns the named property as a string. It returns nil when the
// property is absent and an error when it is present with another type.
func (r *Reader) PropString(name string) (*string, error) {
	v, ok := r.node.Property(name)
	if !ok {
		return nil, nil
	}
	if v.Kind != KindString {
		return nil, r.errorf("%w: property %s: expected string, got %s %s", ErrTypeMismatch, name, v.Kind, v)
	}
	s := v.Str
	return &s, nil
}

// Children returns a Reader for every child called name, in order.
func (r *Reader) Children(name string) []*Reader {
	var out []*Reader
	i := 0
	for _, c := range r.node.Children {
		if c.Name != name {
			continue
		}
		out = append(out, newReader(c, r.path+"."+name+"["+strconv.Itoa(i)+"]"))
		i++
	}
	return out
}

// LookupChild returns a Reader for the first child called name.
func (r *Reader) LookupChild(name string) (*Reader, bool) {
	for _, c := range r.node.Children {
		if c.Name == name {
			return newReader(c, r.path+"."+name), true
		}
	}
	return nil, false
}

// Child is like LookupChild but fails when the child is absent.
func (r *Reader) Child(name string) (*Reader, error) {
	c, ok := r.LookupChild(name)
	if !ok {
		return nil, r.errorf("%w: %s", ErrMissingChild, name)
	}
	return c, nil
}

// ChildStrings returns the first argument of every child called name.
// Each of those arguments must be a string.
func (r *Reader) ChildStrings(name string) ([]string, error) {
	var out []string
	for _, c := range r.Children(name) {
		s, err := c.NextString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *Reader) errorf(format string, args ...any) error {
	return &QueryError{Path: r.path, Err: fmt.Errorf(format, args...)}
}
