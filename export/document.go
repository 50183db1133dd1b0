package export

import "github.com/KimNorgaard/go-recipe"

// The types below are the exported document shape. CBOR falls back to the
// json tags.

type Document struct {
	Recipes []Recipe `json:"recipes" yaml:"recipes"`
}

type Recipe struct {
	Name         string        `json:"name" yaml:"name"`
	Tags         []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Ingredients  []Ingredient  `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Equipment    []string      `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Instructions []Instruction `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Source       *Source       `json:"source,omitempty" yaml:"source,omitempty"`
}

type Ingredient struct {
	ID           *string       `json:"id,omitempty" yaml:"id,omitempty"`
	Names        []Name        `json:"names,omitempty" yaml:"names,omitempty"`
	Measurements []Measurement `json:"measurements,omitempty" yaml:"measurements,omitempty"`
	Notes        []string      `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type Name struct {
	Name string  `json:"name" yaml:"name"`
	Kind *string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

type Measurement struct {
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     *string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

type Instruction struct {
	Description string   `json:"description" yaml:"description"`
	Refs        []string `json:"refs,omitempty" yaml:"refs,omitempty"`
}

// Source kinds.
const (
	SourceURL   = "url"
	SourceOther = "other"
)

type Source struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

func newDocument(items []Item) Document {
	doc := Document{Recipes: make([]Recipe, 0, len(items))}
	for _, it := range items {
		doc.Recipes = append(doc.Recipes, newRecipe(it.Name, it.Recipe))
	}
	return doc
}

func newRecipe(name string, r recipe.Recipe) Recipe {
	out := Recipe{
		Name:      name,
		Tags:      r.Tags,
		Equipment: r.Equipment,
	}
	for _, in := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, newIngredient(in))
	}
	for _, in := range r.Instructions {
		out.Instructions = append(out.Instructions, Instruction{
			Description: in.Description,
			Refs:        in.IngredientRefs,
		})
	}
	switch s := r.Source.(type) {
	case recipe.URLSource:
		out.Source = &Source{Kind: SourceURL, Value: s.String()}
	case recipe.OtherSource:
		out.Source = &Source{Kind: SourceOther, Value: s.Text}
	}
	return out
}

func newIngredient(in recipe.Ingredient) Ingredient {
	out := Ingredient{ID: in.ID, Notes: in.Notes}
	for _, n := range in.Names {
		out.Names = append(out.Names, Name{Name: n.Name, Kind: n.Subtype})
	}
	for _, m := range in.Measurements {
		out.Measurements = append(out.Measurements, Measurement{Quantity: m.Quantity, Unit: m.Unit})
	}
	return out
}
