/*
Package recipe encodes and decodes recipes as KDL documents.

A recipe is a tree of named nodes. The package maps that tree to and from
the Recipe model, and ships a small KDL engine for the text side:

	recipe {
	    tag breakfast
	    ingredient Egg 2
	    ingredient Flour kind=All-Purpose id=dry {
	        amount 2 cup
	        amount 250 gram
	    }
	    instructions {
	        step "Whisk the eggs." {
	            ref dry
	        }
	    }
	    source "https://example.com/pancakes"
	}

The mapping has a few shorthand rules. An ingredient with a single name or
a single measurement carries it inline on the ingredient node itself;
several names become option children and several measurements become
amount children. The decoder accepts both forms, and the encoder always
writes the canonical one, so decoding and re-encoding an encoded document
reproduces it exactly. Whole quantities are written as integers.

Unmarshal and Marshal cover the common case of one recipe per document:

	var r recipe.Recipe
	if err := recipe.Unmarshal(data, &r); err != nil {
		// handle error
	}
	out, err := recipe.Marshal("recipe", r, recipe.Indent(2))

A Decoder reads every top-level node of a stream in turn and an Encoder
appends nodes to one. Parse and Format expose the untyped document tree
from package document.

Decode errors are *DecodeError values wrapping a *document.QueryError,
whose path names the offending node, for example
"recipe.ingredient[2].amount[0]". Syntax errors are document.ParseErrors.
*/
package recipe
