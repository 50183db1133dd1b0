package recipe

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-recipe/document"
	"github.com/KimNorgaard/go-recipe/internal/lexer"
	"github.com/KimNorgaard/go-recipe/internal/parser"
)

// NodeMarshaler is the interface implemented by types that can encode
// themselves as a node. Encoding never fails.
type NodeMarshaler interface {
	MarshalNode() *document.Builder
}

// NodeUnmarshaler is the interface implemented by types that can decode
// themselves from a node.
type NodeUnmarshaler interface {
	UnmarshalNode(r *document.Reader) error
}

// Marshal returns the text encoding of v as a single node called name.
func Marshal(name string, v NodeMarshaler, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(name, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses data and decodes its first top-level node into v.
// Any further nodes are ignored; use a Decoder to read them all.
func Unmarshal(data []byte, v NodeUnmarshaler, opts ...Option) error {
	doc, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	if len(doc.Nodes) == 0 {
		return ErrEmptyDocument
	}
	return DecodeNode(doc.Nodes[0], v)
}

// DecodeNode decodes n into v. Failures are returned as a *DecodeError.
func DecodeNode(n *document.Node, v NodeUnmarshaler) error {
	if err := v.UnmarshalNode(document.NewReader(n)); err != nil {
		return &DecodeError{Name: n.Name, Err: err}
	}
	return nil
}

// EncodeNode encodes v as a node called name.
func EncodeNode(name string, v NodeMarshaler) *document.Node {
	return v.MarshalNode().Build(name)
}

// Parse parses KDL text into a document tree. Syntax errors are returned
// together as a document.ParseErrors value.
func Parse(data []byte, opts ...Option) (*document.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parse(bytes.NewReader(data), o)
}

func parse(r io.Reader, o *options) (*document.Document, error) {
	p := parser.New(lexer.New(r), o.maxDepth)
	doc := p.Parse()
	if len(p.Errors()) > 0 {
		return nil, p.Errors()
	}
	return doc, nil
}
