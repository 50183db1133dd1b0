package recipe

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-recipe/document"
)

// Decoder reads recipe nodes from an input stream. Each call to Decode
// consumes one top-level node.
type Decoder struct {
	r     io.Reader
	opts  []Option
	nodes []*document.Node
	name  string
	err   error
	read  bool
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder parses the whole input on the first call to Decode. It is
// the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode decodes the next top-level node into v. It returns io.EOF when
// every node has been consumed. If the input contains syntax errors,
// Decode returns a document.ParseErrors value on every call.
func (d *Decoder) Decode(v NodeUnmarshaler) error {
	if !d.read {
		d.read = true
		d.err = d.parse()
	}
	if d.err != nil {
		return d.err
	}
	if len(d.nodes) == 0 {
		return io.EOF
	}
	n := d.nodes[0]
	d.nodes = d.nodes[1:]
	d.name = n.Name
	return DecodeNode(n, v)
}

// Name returns the name of the node most recently passed to Decode.
func (d *Decoder) Name() string {
	return d.name
}

func (d *Decoder) parse() error {
	if d.r == nil {
		return fmt.Errorf("recipe: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return err
	}
	doc, err := parse(d.r, o)
	if err != nil {
		return err
	}
	d.nodes = doc.Nodes
	return nil
}

// UnmarshalNode decodes a recipe. The instruction wrapper child is
// required even when it holds no steps.
func (r *Recipe) UnmarshalNode(rd *document.Reader) error {
	var (
		out Recipe
		err error
	)
	if out.Tags, err = rd.ChildStrings(nodeTag); err != nil {
		return err
	}
	if out.Ingredients, err = decodeEach[Ingredient](rd.Children(nodeIngredient)); err != nil {
		return err
	}
	if out.Equipment, err = rd.ChildStrings(nodeEquipment); err != nil {
		return err
	}

	wrapper, err := rd.Child(nodeInstruction)
	if err != nil {
		// Accept the spelling the encoder writes.
		w, ok := rd.LookupChild(nodeInstructions)
		if !ok {
			return err
		}
		wrapper = w
	}
	if out.Instructions, err = decodeEach[Instruction](wrapper.Children(nodeStep)); err != nil {
		return err
	}

	if src, ok := rd.LookupChild(nodeSource); ok {
		s, err := src.NextString()
		if err != nil {
			return err
		}
		out.Source = ParseSource(s)
	}

	*r = out
	return nil
}

// UnmarshalNode decodes an ingredient. Names and measurements written
// inline on the node are appended after the explicit option and amount
// children; an inline form that does not parse is ignored.
func (in *Ingredient) UnmarshalNode(rd *document.Reader) error {
	var (
		out Ingredient
		err error
	)
	if out.ID, err = rd.PropString(propID); err != nil {
		return err
	}

	if out.Names, err = decodeEach[IngredientName](rd.Children(nodeOption)); err != nil {
		return err
	}
	if name, ok := tryDecode[IngredientName](rd); ok {
		out.Names = append(out.Names, name)
	}

	if out.Measurements, err = decodeEach[Measurement](rd.Children(nodeAmount)); err != nil {
		return err
	}
	if m, ok := tryDecode[Measurement](rd); ok {
		out.Measurements = append(out.Measurements, m)
	}

	if out.Notes, err = rd.ChildStrings(nodeNote); err != nil {
		return err
	}

	*in = out
	return nil
}

// UnmarshalNode decodes a name from the next argument and the optional
// kind property.
func (n *IngredientName) UnmarshalNode(rd *document.Reader) error {
	name, err := rd.NextString()
	if err != nil {
		return err
	}
	subtype, err := rd.PropString(propKind)
	if err != nil {
		return err
	}
	*n = IngredientName{Name: name, Subtype: subtype}
	return nil
}

// UnmarshalNode decodes a quantity, integer or float, followed by an
// optional unit.
func (m *Measurement) UnmarshalNode(rd *document.Reader) error {
	v, err := rd.Next()
	if err != nil {
		return err
	}
	q, ok := quantity(v)
	if !ok {
		return rd.Mismatch(v, "number")
	}

	var unit *string
	if rd.Remaining() > 0 {
		u, err := rd.NextString()
		if err != nil {
			return err
		}
		unit = &u
	}

	*m = Measurement{Quantity: q, Unit: unit}
	return nil
}

func (in *Instruction) UnmarshalNode(rd *document.Reader) error {
	description, err := rd.NextString()
	if err != nil {
		return err
	}
	refs, err := rd.ChildStrings(nodeRef)
	if err != nil {
		return err
	}
	*in = Instruction{Description: description, IngredientRefs: refs}
	return nil
}
