package recipe

import (
	"io"

	"github.com/KimNorgaard/go-recipe/document"
	"github.com/KimNorgaard/go-recipe/internal/formatter"
)

// Format writes doc to w as KDL text, one top-level node per line group.
func Format(w io.Writer, doc *document.Document, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	return formatter.New(w, o.indent).Format(doc)
}

// FormatNode writes a single node to w as KDL text.
func FormatNode(w io.Writer, n *document.Node, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	return formatter.New(w, o.indent).FormatNode(n)
}
