package parser

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/KimNorgaard/go-recipe/document"
	"github.com/KimNorgaard/go-recipe/internal/lexer"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) (*document.Document, document.ParseErrors) {
	t.Helper()
	p := New(lexer.New(strings.NewReader(input)), 1000)
	doc := p.Parse()
	return doc, p.Errors()
}

func parseOK(t *testing.T, input string) *document.Document {
	t.Helper()
	doc, errs := parse(t, input)
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	return doc
}

func TestParse_Node(t *testing.T) {
	doc := parseOK(t, `ingredient Sugar kind=Granulated 1 tbsp id="dry"`+"\n")

	require.Len(t, doc.Nodes, 1)
	require.Equal(t, &document.Node{
		Name: "ingredient",
		Entries: []document.Entry{
			{Value: document.StringValue("Sugar")},
			{Name: "kind", Value: document.StringValue("Granulated")},
			{Value: document.IntValue(1)},
			{Value: document.StringValue("tbsp")},
			{Name: "id", Value: document.StringValue("dry")},
		},
	}, doc.Nodes[0])
}

func TestParse_Children(t *testing.T) {
	input := `
recipe {
    ingredient Flour {
        amount 1 cup
        amount 120 g
    }
    step "Mix."; step Bake.
}
`
	doc := parseOK(t, input)

	require.Len(t, doc.Nodes, 1)
	recipe := doc.Nodes[0]
	require.Equal(t, "recipe", recipe.Name)
	require.Len(t, recipe.Children, 3)

	flour := recipe.Children[0]
	require.Len(t, flour.Children, 2)
	require.Equal(t, []document.Value{document.IntValue(120), document.StringValue("g")}, flour.Children[1].Arguments())

	require.Equal(t, "step", recipe.Children[1].Name)
	require.Equal(t, "Bake.", recipe.Children[2].Arguments()[0].Str)
}

func TestParse_Values(t *testing.T) {
	tests := []struct {
		input    string
		expected document.Value
	}{
		{"n 42", document.IntValue(42)},
		{"n -7", document.IntValue(-7)},
		{"n 1_000", document.IntValue(1000)},
		{"n 0xff", document.IntValue(255)},
		{"n -0o17", document.IntValue(-15)},
		{"n 0b101", document.IntValue(5)},
		{"n 0.75", document.FloatValue(0.75)},
		{"n 1e3", document.FloatValue(1000)},
		{"n -9223372036854775808", document.IntValue(math.MinInt64)},
		{"n #true", document.BoolValue(true)},
		{"n false", document.BoolValue(false)},
		{"n #null", document.NullValue()},
		{"n #inf", document.FloatValue(math.Inf(1))},
		{"n #-inf", document.FloatValue(math.Inf(-1))},
		{`n "2%"`, document.StringValue("2%")},
		{`n "with\nnewline"`, document.StringValue("with\nnewline")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			doc := parseOK(t, tt.input)
			require.Len(t, doc.Nodes, 1)
			require.Len(t, doc.Nodes[0].Entries, 1)
			require.True(t, tt.expected.Equal(doc.Nodes[0].Entries[0].Value), "got %v", doc.Nodes[0].Entries[0].Value)
		})
	}

	doc := parseOK(t, "n #nan")
	require.True(t, math.IsNaN(doc.Nodes[0].Entries[0].Value.Float))
}

func TestParse_SlashDash(t *testing.T) {
	input := `
/-ingredient Skipped
ingredient Kept /-"gone" /-kind=1 kind=x /-{
    note "discarded"
} {
    note kept
}
/-step {
    text "discarded"
}
`
	doc := parseOK(t, input)

	require.Len(t, doc.Nodes, 1)
	n := doc.Nodes[0]
	require.Equal(t, []document.Entry{
		{Value: document.StringValue("Kept")},
		{Name: "kind", Value: document.StringValue("x")},
	}, n.Entries)
	require.Len(t, n.Children, 1)
	require.Equal(t, "kept", n.Children[0].Entries[0].Value.Str)
}

func TestParse_AnnotationsAreSkipped(t *testing.T) {
	doc := parseOK(t, `(recipe)ingredient (name)"Egg" count=(u8)1`)
	require.Equal(t, "ingredient", doc.Nodes[0].Name)
	require.Equal(t, []document.Entry{
		{Value: document.StringValue("Egg")},
		{Name: "count", Value: document.IntValue(1)},
	}, doc.Nodes[0].Entries)
}

func TestParse_DuplicatePropertyLastWins(t *testing.T) {
	doc := parseOK(t, `n id=a 1 id=b`)
	require.Equal(t, []document.Entry{
		{Value: document.IntValue(1)},
		{Name: "id", Value: document.StringValue("b")},
	}, doc.Nodes[0].Entries)
}

func TestParse_CommentsAndContinuations(t *testing.T) {
	input := "// leading\nn 1 /* inline */ 2 \\ // trailing\n  3\n"
	doc := parseOK(t, input)
	require.Len(t, doc.Nodes, 1)
	require.Len(t, doc.Nodes[0].Arguments(), 3)
}

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "// only a comment\n", "/* block */", ";;"} {
		doc := parseOK(t, input)
		require.Empty(t, doc.Nodes)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"unterminated string", `n "abc`, "line 1, column 3: unterminated string"},
		{"malformed number", "n 1.2.3", "line 1, column 3: invalid number format: 1.2.3"},
		{"reserved identifier", "n nan", "line 1, column 3: identifier nan is reserved and must be quoted"},
		{"empty key", `n ""=1`, "line 1, column 3: property key cannot be empty"},
		{"stray brace", "n 1\n}", "line 2, column 1: unexpected '}'"},
		{"missing brace", "n {\n  c 1\n", "line 1, column 3: unterminated children block, expected '}' got end of input"},
		{"entry after children", "n { c } 1", "line 1, column 9: expected newline or ';' after children block, got INT ('1')"},
		{"missing value", "n key=\n", "line 1, column 7: unexpected newline"},
		{"number as name", "1 n", "line 1, column 1: expected node name, got INT ('1')"},
		{"integer overflow", "n 9223372036854775808", `line 1, column 3: could not parse "9223372036854775808" as integer: value out of range`},
		{"bad annotation", "n (1", "line 1, column 3: malformed type annotation, expected name got INT ('1')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parse(t, tt.input)
			require.NotEmpty(t, errs)
			require.Equal(t, tt.expected, errs[0].Error())
		})
	}
}

func TestParse_RecoversAndCollectsErrors(t *testing.T) {
	doc, errs := parse(t, "a \"open\nb 1\nc 1.x\nd 2\n")
	require.Len(t, errs, 2)
	require.Equal(t, "parsing error at line 1, column 3: unterminated string (and 1 more)", errs.Error())

	var names []string
	for _, n := range doc.Nodes {
		names = append(names, n.Name)
	}
	require.Equal(t, []string{"b", "d"}, names)
}

func TestParse_MaxDepth(t *testing.T) {
	input := "a {\n b {\n  c {\n   d 1\n  }\n }\n}\ne 2\n"

	p := New(lexer.New(strings.NewReader(input)), 2)
	doc := p.Parse()
	require.Len(t, p.Errors(), 1)
	require.Equal(t, "line 3, column 5: maximum nesting depth of 2 exceeded", p.Errors()[0].Error())
	require.Len(t, doc.Nodes, 2)
	require.Equal(t, "e", doc.Nodes[1].Name)

	p = New(lexer.New(strings.NewReader(input)), 3)
	p.Parse()
	require.Empty(t, p.Errors())
}

func TestParse_MultiLineStringTerminates(t *testing.T) {
	type result struct {
		doc  *document.Document
		errs document.ParseErrors
	}
	done := make(chan result, 1)
	go func() {
		doc, errs := parse(t, "a \"\"\"x\"\"\"\nb 1\n")
		done <- result{doc, errs}
	}()

	select {
	case res := <-done:
		require.Len(t, res.errs, 1)
		require.Equal(t, "line 1, column 3: multi-line strings are not supported", res.errs[0].Error())
		require.Len(t, res.doc.Nodes, 1)
		require.Equal(t, "b", res.doc.Nodes[0].Name)
	case <-time.After(2 * time.Second):
		t.Fatal("parser did not terminate on a multi-line string")
	}
}
