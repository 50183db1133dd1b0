// Package document defines the node tree that recipe documents are decoded
// from and encoded to.
//
// A Node carries an ordered list of entries and an ordered list of child
// nodes. An entry is either a positional argument or a named property;
// arguments and properties keep their relative order so that a tree can be
// written back out exactly as it was read. Children with the same name may
// repeat.
//
// Reader is the read side of the tree: a cursor over one node's arguments
// plus lookups for properties and children. Builder is the write side.
package document

import "slices"

// Entry is a single value on a node. Name is empty for positional
// arguments and holds the key for properties.
type Entry struct {
	Name  string
	Value Value
}

// IsProperty reports whether e is a named property.
func (e Entry) IsProperty() bool { return e.Name != "" }

// Node is a named element of a document tree.
type Node struct {
	Name     string
	Entries  []Entry
	Children []*Node
}

// AddEntry appends e to the node. A property replaces any earlier
// property of the same name and takes the position of the new one.
func (n *Node) AddEntry(e Entry) {
	n.Entries = appendEntry(n.Entries, e)
}

func appendEntry(entries []Entry, e Entry) []Entry {
	if e.IsProperty() {
		entries = slices.DeleteFunc(entries, func(o Entry) bool { return o.Name == e.Name })
	}
	return append(entries, e)
}

// Arguments returns the node's positional values in order.
func (n *Node) Arguments() []Value {
	var args []Value
	for _, e := range n.Entries {
		if !e.IsProperty() {
			args = append(args, e.Value)
		}
	}
	return args
}

// Property returns the value of the named property. If the name occurs
// more than once the last occurrence wins.
func (n *Node) Property(name string) (Value, bool) {
	for i := len(n.Entries) - 1; i >= 0; i-- {
		if n.Entries[i].Name == name {
			return n.Entries[i].Value, true
		}
	}
	return Value{}, false
}

// ChildrenNamed returns the children called name, in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Equal reports whether n and o are structurally identical: same name,
// same entries in the same order, and equal children in the same order.
// Nil and empty slices compare equal.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Name != o.Name || len(n.Entries) != len(o.Entries) || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Entries {
		if n.Entries[i].Name != o.Entries[i].Name || !n.Entries[i].Value.Equal(o.Entries[i].Value) {
			return false
		}
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Document is an ordered sequence of top-level nodes.
type Document struct {
	Nodes []*Node
}

// Equal reports whether d and o hold structurally identical nodes.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.Nodes) != len(o.Nodes) {
		return false
	}
	for i := range d.Nodes {
		if !d.Nodes[i].Equal(o.Nodes[i]) {
			return false
		}
	}
	return true
}
