// Package recipe contains the catalog aggregate describing how each pie is made.
// Recipes are read-only reference data: the saga driver consults them for the
// raw-material quantity to harvest and the baking parameters to schedule.
package recipe

import (
	"errors"
	"fmt"

	"bakery/internal/pkg/errs"
)

// DefaultHarvestQuantity is the fruit quantity used when a recipe has no
// matching fruit ingredient line.
const DefaultHarvestQuantity = 6

// ErrRecipeIsNotConstructed is returned when a Recipe instance was not created
// through the NewRecipe factory method.
var ErrRecipeIsNotConstructed = errors.New("Recipe must be created via NewRecipe constructor")

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Item     string
	Quantity float64
	Unit     string
}

// Recipe describes how a catalog pie is made: its ingredient lines and the
// oven parameters for the baking stage. The recipe ID is the pie type name.
//
// Recipe is read-only after construction; the catalog is seeded once at
// process start and never mutated.
type Recipe struct {
	id          string
	name        string
	description string
	bakingTime  int
	bakingTemp  int
	ingredients []Ingredient
	prepSteps   []string
	difficulty  string

	isConstructed bool
}

// NewRecipe creates a validated Recipe.
//
// Parameters:
//   - id: the pie type this recipe belongs to (catalog key)
//   - name, description: display fields
//   - bakingTime: oven duration in minutes (must be positive)
//   - bakingTemp: oven temperature in degrees Fahrenheit (must be positive)
//   - ingredients: ingredient lines (at least one required)
//   - prepSteps, difficulty: informational fields
func NewRecipe(
	id string,
	name string,
	description string,
	bakingTime int,
	bakingTemp int,
	ingredients []Ingredient,
	prepSteps []string,
	difficulty string,
) (*Recipe, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("recipe id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("recipe name")
	}
	if bakingTime <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"baking time", fmt.Errorf("%d is not greater than 0", bakingTime))
	}
	if bakingTemp <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"baking temp", fmt.Errorf("%d is not greater than 0", bakingTemp))
	}
	if len(ingredients) == 0 {
		return nil, errs.NewValueIsRequiredError("ingredients")
	}

	return &Recipe{
		id:            id,
		name:          name,
		description:   description,
		bakingTime:    bakingTime,
		bakingTemp:    bakingTemp,
		ingredients:   ingredients,
		prepSteps:     prepSteps,
		difficulty:    difficulty,
		isConstructed: true,
	}, nil
}

// Validate ensures the Recipe was created through NewRecipe.
func (r *Recipe) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipeIsNotConstructed
	}
	return nil
}

// ID returns the pie type this recipe belongs to.
func (r *Recipe) ID() string {
	return r.id
}

// Name returns the recipe's display name.
func (r *Recipe) Name() string {
	return r.name
}

// Description returns the recipe's description.
func (r *Recipe) Description() string {
	return r.description
}

// BakingTime returns the oven duration in minutes.
func (r *Recipe) BakingTime() int {
	return r.bakingTime
}

// BakingTemp returns the oven temperature in degrees Fahrenheit.
func (r *Recipe) BakingTemp() int {
	return r.bakingTemp
}

// Ingredients returns a copy of the recipe's ingredient lines.
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// PrepSteps returns a copy of the recipe's preparation steps.
func (r *Recipe) PrepSteps() []string {
	out := make([]string, len(r.prepSteps))
	copy(out, r.prepSteps)
	return out
}

// Difficulty returns the recipe's difficulty rating.
func (r *Recipe) Difficulty() string {
	return r.difficulty
}

// IngredientQuantity returns the quantity of the named ingredient line
// and whether such a line exists.
func (r *Recipe) IngredientQuantity(item string) (float64, bool) {
	for _, ing := range r.ingredients {
		if ing.Item == item {
			return ing.Quantity, true
		}
	}
	return 0, false
}

// HarvestQuantity returns the raw-fruit quantity to request from the
// harvesting service. It looks for the given fruit ingredient line (or the
// generic "apples" line) and falls back to DefaultHarvestQuantity when the
// recipe has no matching line.
func (r *Recipe) HarvestQuantity(fruitIngredient string) float64 {
	if qty, ok := r.IngredientQuantity("apples"); ok {
		return qty
	}
	if qty, ok := r.IngredientQuantity(fruitIngredient); ok {
		return qty
	}
	return DefaultHarvestQuantity
}
