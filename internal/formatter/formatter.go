package formatter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-recipe/document"
	"github.com/KimNorgaard/go-recipe/internal/lexer"
)

const (
	defaultIndent = 4
)

// Formatter writes a document tree to an output stream as KDL text.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
	err    error
}

// New returns a new formatter that writes to w. An indent of zero selects
// the compact layout, where children blocks are written on one line.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes every node of doc, each terminated by a newline.
func (f *Formatter) Format(doc *document.Document) error {
	for _, n := range doc.Nodes {
		if err := f.FormatNode(n); err != nil {
			return err
		}
	}
	return nil
}

// FormatNode writes a single top-level node terminated by a newline.
func (f *Formatter) FormatNode(n *document.Node) error {
	f.writeNode(n)
	f.write("\n")
	return f.err
}

func (f *Formatter) write(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.depth; i++ {
		f.write(f.indent)
	}
}

func (f *Formatter) writeNode(n *document.Node) {
	f.write(FormatString(n.Name))
	for _, e := range n.Entries {
		f.write(" ")
		if e.IsProperty() {
			f.write(FormatString(e.Name))
			f.write("=")
		}
		f.write(FormatValue(e.Value))
	}
	if len(n.Children) == 0 {
		return
	}

	if f.indent == "" {
		f.write(" { ")
		for i, c := range n.Children {
			if i > 0 {
				f.write("; ")
			}
			f.writeNode(c)
		}
		f.write(" }")
		return
	}

	f.write(" {\n")
	f.depth++
	for _, c := range n.Children {
		f.writeIndent()
		f.writeNode(c)
		f.write("\n")
	}
	f.depth--
	f.writeIndent()
	f.write("}")
}

// FormatValue returns the KDL literal for v.
func FormatValue(v document.Value) string {
	switch v.Kind {
	case document.KindString:
		return FormatString(v.Str)
	case document.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case document.KindFloat:
		return formatFloat(v.Float)
	case document.KindBool:
		if v.Bool {
			return "#true"
		}
		return "#false"
	}
	return "#null"
}

// FormatString returns s as a bare identifier when it reads back
// unchanged, and as a quoted string otherwise.
func FormatString(s string) string {
	if lexer.IsBareIdentifier(s) {
		return s
	}
	return quote(s)
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "#nan"
	case math.IsInf(v, 1):
		return "#inf"
	case math.IsInf(v, -1):
		return "#-inf"
	}
	var s string
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'e', -1, 64)
	}
	// A float must not read back as an integer.
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7F || r == '\u0085' || r == '\u2028' || r == '\u2029' || r == '\uFEFF' {
				fmt.Fprintf(&b, `\u{%x}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
