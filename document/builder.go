package document

// Builder assembles a node. Operations append in call order, which is
// the order entries and children appear in the built node.
type Builder struct {
	entries  []Entry
	children []*Node
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddValue appends a positional argument.
func (b *Builder) AddValue(v Value) *Builder {
	b.entries = append(b.entries, Entry{Value: v})
	return b
}

// SetProperty sets a named property. Setting a name that is already
// present removes the earlier entry and appends the new one, as the
// parser does for a repeated property.
func (b *Builder) SetProperty(name string, v Value) *Builder {
	b.entries = appendEntry(b.entries, Entry{Name: name, Value: v})
	return b
}

// AddChild appends one child called name built from child. A nil child
// produces an empty node.
func (b *Builder) AddChild(name string, child *Builder) *Builder {
	if child == nil {
		child = NewBuilder()
	}
	b.children = append(b.children, child.Build(name))
	return b
}

// AddChildren appends one child called name per builder.
func (b *Builder) AddChildren(name string, children ...*Builder) *Builder {
	for _, c := range children {
		b.AddChild(name, c)
	}
	return b
}

// Merge splices o's entries and children into b. Properties go through
// SetProperty, so a property o shares with b overwrites it.
func (b *Builder) Merge(o *Builder) *Builder {
	for _, e := range o.entries {
		if e.IsProperty() {
			b.SetProperty(e.Name, e.Value)
		} else {
			b.AddValue(e.Value)
		}
	}
	b.children = append(b.children, o.children...)
	return b
}

// OmitIfEmpty calls emit unless empty is true. It lets encoders skip an
// optional field without breaking the builder chain.
func (b *Builder) OmitIfEmpty(empty bool, emit func(*Builder)) *Builder {
	if !empty {
		emit(b)
	}
	return b
}

// Build returns a node called name. The builder may be reused afterwards;
// the returned node does not share its entry slice with b.
func (b *Builder) Build(name string) *Node {
	n := &Node{Name: name}
	if len(b.entries) > 0 {
		n.Entries = append([]Entry(nil), b.entries...)
	}
	if len(b.children) > 0 {
		n.Children = append([]*Node(nil), b.children...)
	}
	return n
}
