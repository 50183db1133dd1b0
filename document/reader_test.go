package document_test

import (
	"testing"

	"github.com/KimNorgaard/go-recipe/document"
	"github.com/stretchr/testify/require"
)

func sampleNode() *document.Node {
	return &document.Node{
		Name: "ingredient",
		Entries: []document.Entry{
			{Value: document.StringValue("Sugar")},
			{Name: "kind", Value: document.StringValue("Granulated")},
			{Value: document.IntValue(1)},
			{Value: document.StringValue("tbsp")},
			{Name: "id", Value: document.StringValue("dry")},
		},
		Children: []*document.Node{
			{Name: "note", Entries: []document.Entry{{Value: document.StringValue("first")}}},
			{Name: "amount", Entries: []document.Entry{{Value: document.IntValue(2)}}},
			{Name: "note", Entries: []document.Entry{{Value: document.StringValue("second")}}},
		},
	}
}

func TestReader_Next(t *testing.T) {
	r := document.NewReader(sampleNode())
	require.Equal(t, 3, r.Remaining())

	name, err := r.NextString()
	require.NoError(t, err)
	require.Equal(t, "Sugar", name)

	v, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, document.IntValue(1), v)

	unit, err := r.NextString()
	require.NoError(t, err)
	require.Equal(t, "tbsp", unit)
	require.Zero(t, r.Remaining())

	_, err = r.Next()
	require.ErrorIs(t, err, document.ErrMissingValue)
	require.EqualError(t, err, "ingredient: missing value: argument 3")
}

func TestReader_NextStringMismatch(t *testing.T) {
	r := document.NewReader(sampleNode())
	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.NextString()
	require.ErrorIs(t, err, document.ErrTypeMismatch)
	require.EqualError(t, err, "ingredient: type mismatch: argument 1: expected string, got integer 1")

	var qe *document.QueryError
	require.ErrorAs(t, err, &qe)
	require.Equal(t, "ingredient", qe.Path)
}

func TestReader_MarkReset(t *testing.T) {
	r := document.NewReader(sampleNode())
	mark := r.Mark()
	_, err := r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	require.NoError(t, err)

	r.Reset(mark)
	s, err := r.NextString()
	require.NoError(t, err)
	require.Equal(t, "Sugar", s)

	// Out of range marks are ignored.
	r.Reset(99)
	require.Equal(t, 2, r.Remaining())
}

func TestReader_Properties(t *testing.T) {
	r := document.NewReader(sampleNode())

	kind, err := r.PropString("kind")
	require.NoError(t, err)
	require.NotNil(t, kind)
	require.Equal(t, "Granulated", *kind)

	missing, err := r.PropString("missing")
	require.NoError(t, err)
	require.Nil(t, missing)

	n := &document.Node{Name: "x", Entries: []document.Entry{{Name: "id", Value: document.IntValue(3)}}}
	_, err = document.NewReader(n).PropString("id")
	require.ErrorIs(t, err, document.ErrTypeMismatch)
	require.EqualError(t, err, "x: type mismatch: property id: expected string, got integer 3")
}

func TestReader_Children(t *testing.T) {
	r := document.NewReader(sampleNode())

	notes := r.Children("note")
	require.Len(t, notes, 2)
	require.Equal(t, "ingredient.note[0]", notes[0].Path())
	require.Equal(t, "ingredient.note[1]", notes[1].Path())

	values, err := r.ChildStrings("note")
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, values)

	none, err := r.ChildStrings("option")
	require.NoError(t, err)
	require.Nil(t, none)

	_, err = r.ChildStrings("amount")
	require.ErrorIs(t, err, document.ErrTypeMismatch)
	require.Contains(t, err.Error(), "ingredient.amount[0]: ")
}

func TestReader_Child(t *testing.T) {
	r := document.NewReader(sampleNode())

	c, err := r.Child("amount")
	require.NoError(t, err)
	require.Equal(t, "ingredient.amount", c.Path())

	_, ok := r.LookupChild("source")
	require.False(t, ok)

	_, err = r.Child("instruction")
	require.ErrorIs(t, err, document.ErrMissingChild)
	require.EqualError(t, err, "ingredient: missing child: instruction")
}
