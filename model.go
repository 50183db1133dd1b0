package recipe

// Recipe is the top-level aggregate: everything needed to cook one dish.
type Recipe struct {
	Tags         []string
	Ingredients  []Ingredient
	Equipment    []string
	Instructions []Instruction
	// Source is nil when the recipe has no recorded origin.
	Source Source
}

// Ingredient is one entry of a recipe's ingredient list.
//
// Names holds the alternatives the ingredient may be bought as; at least
// one is expected but not enforced. ID is the key instructions use to
// refer to the ingredient. References are not checked.
type Ingredient struct {
	ID           *string
	Names        []IngredientName
	Measurements []Measurement
	Notes        []string
}

// IngredientName names an ingredient with an optional variety or brand.
type IngredientName struct {
	Name    string
	Subtype *string
}

// Measurement is a quantity with an optional unit. Quantities are not
// converted between units.
type Measurement struct {
	Quantity float64
	Unit     *string
}

// Instruction is a single step of a recipe.
type Instruction struct {
	Description    string
	IngredientRefs []string
}
