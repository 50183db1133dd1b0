package recipe

import (
	"io"

	"github.com/KimNorgaard/go-recipe/document"
	"github.com/KimNorgaard/go-recipe/internal/formatter"
)

// Encoder writes recipe nodes to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes v as a top-level node called name, followed by a newline.
func (e *Encoder) Encode(name string, v NodeMarshaler) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	return formatter.New(e.w, o.indent).FormatNode(EncodeNode(name, v))
}

// MarshalNode encodes a recipe. The instructions wrapper is always
// written; the source child only when a source is set.
func (r Recipe) MarshalNode() *document.Builder {
	steps := document.NewBuilder().AddChildren(nodeStep, encodeEach(r.Instructions)...)
	return document.NewBuilder().
		AddChildren(nodeTag, stringNodes(r.Tags)...).
		AddChildren(nodeIngredient, encodeEach(r.Ingredients)...).
		AddChildren(nodeEquipment, stringNodes(r.Equipment)...).
		AddChild(nodeInstructions, steps).
		OmitIfEmpty(r.Source == nil, func(b *document.Builder) {
			b.AddChild(nodeSource, document.NewBuilder().AddValue(document.StringValue(r.Source.String())))
		})
}

// MarshalNode encodes an ingredient. A single name or measurement is
// written inline on the node; any other count is written as option or
// amount children.
func (in Ingredient) MarshalNode() *document.Builder {
	b := document.NewBuilder()

	if len(in.Names) == 1 {
		b.Merge(in.Names[0].MarshalNode())
	} else {
		b.AddChildren(nodeOption, encodeEach(in.Names)...)
	}

	if len(in.Measurements) == 1 {
		b.Merge(in.Measurements[0].MarshalNode())
	} else {
		b.AddChildren(nodeAmount, encodeEach(in.Measurements)...)
	}

	return b.
		OmitIfEmpty(in.ID == nil, func(b *document.Builder) {
			b.SetProperty(propID, document.StringValue(*in.ID))
		}).
		AddChildren(nodeNote, stringNodes(in.Notes)...)
}

func (n IngredientName) MarshalNode() *document.Builder {
	return document.NewBuilder().
		AddValue(document.StringValue(n.Name)).
		OmitIfEmpty(n.Subtype == nil, func(b *document.Builder) {
			b.SetProperty(propKind, document.StringValue(*n.Subtype))
		})
}

// MarshalNode encodes a measurement. Whole quantities are written as
// integers.
func (m Measurement) MarshalNode() *document.Builder {
	return document.NewBuilder().
		AddValue(quantityValue(m.Quantity)).
		OmitIfEmpty(m.Unit == nil, func(b *document.Builder) {
			b.AddValue(document.StringValue(*m.Unit))
		})
}

func (in Instruction) MarshalNode() *document.Builder {
	return document.NewBuilder().
		AddValue(document.StringValue(in.Description)).
		AddChildren(nodeRef, stringNodes(in.IngredientRefs)...)
}
