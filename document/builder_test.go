package document_test

import (
	"math"
	"testing"

	"github.com/KimNorgaard/go-recipe/document"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Order(t *testing.T) {
	b := document.NewBuilder().
		AddValue(document.StringValue("Sugar")).
		SetProperty("kind", document.StringValue("Granulated")).
		AddValue(document.IntValue(1)).
		AddChild("note", document.NewBuilder().AddValue(document.StringValue("n")))

	n := b.Build("ingredient")
	require.Equal(t, "ingredient", n.Name)
	require.Equal(t, []document.Entry{
		{Value: document.StringValue("Sugar")},
		{Name: "kind", Value: document.StringValue("Granulated")},
		{Value: document.IntValue(1)},
	}, n.Entries)
	require.Len(t, n.Children, 1)
	require.Equal(t, "note", n.Children[0].Name)
}

func TestBuilder_SetPropertyLastWins(t *testing.T) {
	n := document.NewBuilder().
		SetProperty("id", document.StringValue("a")).
		AddValue(document.IntValue(1)).
		SetProperty("id", document.StringValue("b")).
		Build("x")

	require.Equal(t, []document.Entry{
		{Value: document.IntValue(1)},
		{Name: "id", Value: document.StringValue("b")},
	}, n.Entries)
}

func TestBuilder_SetPropertyMatchesParsedOrder(t *testing.T) {
	built := document.NewBuilder().
		SetProperty("kind", document.StringValue("a")).
		AddValue(document.StringValue("Milk")).
		SetProperty("kind", document.StringValue("b")).
		Build("ingredient")

	parsed := &document.Node{Name: "ingredient"}
	parsed.AddEntry(document.Entry{Name: "kind", Value: document.StringValue("a")})
	parsed.AddEntry(document.Entry{Value: document.StringValue("Milk")})
	parsed.AddEntry(document.Entry{Name: "kind", Value: document.StringValue("b")})

	require.True(t, built.Equal(parsed))
}

func TestBuilder_Merge(t *testing.T) {
	inner := document.NewBuilder().
		AddValue(document.StringValue("Milk")).
		SetProperty("kind", document.StringValue("Whole"))
	n := document.NewBuilder().
		SetProperty("kind", document.StringValue("old")).
		Merge(inner).
		Build("ingredient")

	require.Equal(t, []document.Entry{
		{Value: document.StringValue("Milk")},
		{Name: "kind", Value: document.StringValue("Whole")},
	}, n.Entries)
}

func TestBuilder_OmitIfEmpty(t *testing.T) {
	var id *string
	n := document.NewBuilder().
		OmitIfEmpty(id == nil, func(b *document.Builder) { b.SetProperty("id", document.StringValue(*id)) }).
		OmitIfEmpty(false, func(b *document.Builder) { b.AddValue(document.BoolValue(true)) }).
		Build("x")

	require.Equal(t, []document.Entry{{Value: document.BoolValue(true)}}, n.Entries)
}

func TestBuilder_EmptyBuildsNilSlices(t *testing.T) {
	n := document.NewBuilder().AddChildren("step").AddChild("wrapper", nil).Build("recipe")
	require.Nil(t, n.Entries)
	require.Len(t, n.Children, 1)
	require.Nil(t, n.Children[0].Entries)
	require.Nil(t, n.Children[0].Children)
}

func TestNode_Equal(t *testing.T) {
	a := &document.Node{Name: "a", Entries: []document.Entry{{Value: document.FloatValue(math.NaN())}}}
	b := &document.Node{Name: "a", Entries: []document.Entry{{Value: document.FloatValue(math.NaN())}}, Children: []*document.Node{}}
	require.True(t, a.Equal(b))

	c := &document.Node{Name: "a", Entries: []document.Entry{{Value: document.IntValue(1)}}}
	d := &document.Node{Name: "a", Entries: []document.Entry{{Value: document.FloatValue(1)}}}
	require.False(t, c.Equal(d), "integer and float tokens are distinct")

	e := &document.Node{Name: "a", Entries: []document.Entry{{Name: "k", Value: document.IntValue(1)}}}
	require.False(t, c.Equal(e), "argument and property are distinct")

	var nilNode *document.Node
	require.True(t, nilNode.Equal(nil))
	require.False(t, nilNode.Equal(a))
}

func TestNode_PropertyLastWins(t *testing.T) {
	n := &document.Node{Name: "x", Entries: []document.Entry{
		{Name: "id", Value: document.StringValue("a")},
		{Name: "id", Value: document.StringValue("b")},
	}}
	v, ok := n.Property("id")
	require.True(t, ok)
	require.Equal(t, "b", v.Str)
	require.Nil(t, n.Arguments())
}
