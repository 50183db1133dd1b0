package recipe

import (
	"math"

	"github.com/KimNorgaard/go-recipe/document"
)

// Child node names shared by the decoder and the encoder.
const (
	nodeTag          = "tag"
	nodeIngredient   = "ingredient"
	nodeEquipment    = "equipment"
	nodeInstruction  = "instruction"
	nodeInstructions = "instructions"
	nodeStep         = "step"
	nodeSource       = "source"
	nodeOption       = "option"
	nodeAmount       = "amount"
	nodeNote         = "note"
	nodeRef          = "ref"

	propID   = "id"
	propKind = "kind"
)

// unmarshalerPtr is satisfied by *T when *T decodes itself from a node.
type unmarshalerPtr[T any] interface {
	*T
	NodeUnmarshaler
}

// decodeEach decodes every reader into a T. Decoding stops at the first
// error.
func decodeEach[T any, P unmarshalerPtr[T]](readers []*document.Reader) ([]T, error) {
	var out []T
	for _, rd := range readers {
		var v T
		if err := P(&v).UnmarshalNode(rd); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// tryDecode decodes a T from rd's remaining arguments. On failure the
// cursor is restored and ok is false.
func tryDecode[T any, P unmarshalerPtr[T]](rd *document.Reader) (v T, ok bool) {
	mark := rd.Mark()
	if err := P(&v).UnmarshalNode(rd); err != nil {
		rd.Reset(mark)
		var zero T
		return zero, false
	}
	return v, true
}

// encodeEach returns one builder per item.
func encodeEach[T NodeMarshaler](items []T) []*document.Builder {
	out := make([]*document.Builder, len(items))
	for i, it := range items {
		out[i] = it.MarshalNode()
	}
	return out
}

// stringNodes returns one single-valued builder per string.
func stringNodes(values []string) []*document.Builder {
	out := make([]*document.Builder, len(values))
	for i, s := range values {
		out[i] = document.NewBuilder().AddValue(document.StringValue(s))
	}
	return out
}

// quantityValue is the canonical token for a quantity: an integer when
// the quantity is whole and fits in an int64, a float otherwise.
func quantityValue(q float64) document.Value {
	if integral(q) {
		return document.IntValue(int64(q))
	}
	return document.FloatValue(q)
}

func integral(q float64) bool {
	return !math.IsInf(q, 0) && !math.IsNaN(q) &&
		q == math.Trunc(q) &&
		q >= math.MinInt64 && q < math.MaxInt64
}

// quantity converts a decoded token to a quantity. Integer tokens convert
// exactly where float64 can represent them.
func quantity(v document.Value) (float64, bool) {
	switch v.Kind {
	case document.KindInt:
		return float64(v.Int), true
	case document.KindFloat:
		return v.Float, true
	}
	return 0, false
}
