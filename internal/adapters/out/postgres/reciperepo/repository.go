package reciperepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/recipe"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRecipeCatalog implements RecipeCatalog using GORM.
type GormRecipeCatalog struct {
	db *gorm.DB
}

// NewGormRecipeCatalog creates a new GORM recipe catalog.
func NewGormRecipeCatalog(db *gorm.DB) *GormRecipeCatalog {
	return &GormRecipeCatalog{db: db}
}

// Get retrieves the recipe for a pie type.
func (r *GormRecipeCatalog) Get(ctx context.Context, pieType string) (*recipe.Recipe, error) {
	if pieType == "" {
		return nil, errs.NewValueIsRequiredError("pieType")
	}

	var dto RecipeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", pieType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipe", pieType)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Seed inserts the recipe catalog, skipping rows that already exist.
// Safe to run on every process start.
func (r *GormRecipeCatalog) Seed(ctx context.Context) error {
	recipes := seedRecipes()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&recipes).Error
}

// seedRecipes returns the full product catalog: one recipe per pie type.
func seedRecipes() []RecipeDTO {
	return []RecipeDTO{
		{
			ID:          "apple",
			Name:        "Classic Apple Pie",
			Description: "Traditional American apple pie with cinnamon",
			BakingTime:  45,
			BakingTemp:  375,
			Ingredients: []IngredientDTO{
				{Item: "apples", Quantity: 6, Unit: "whole"},
				{Item: "sugar", Quantity: 0.75, Unit: "cup"},
				{Item: "cinnamon", Quantity: 1, Unit: "tsp"},
				{Item: "butter", Quantity: 2, Unit: "tbsp"},
				{Item: "flour", Quantity: 2.5, Unit: "cup"},
				{Item: "salt", Quantity: 1, Unit: "tsp"},
			},
			PrepSteps:  []string{"wash_fruit", "peel_fruit", "slice_fruit", "make_dough", "assemble"},
			Difficulty: "medium",
		},
		{
			ID:          "cherry",
			Name:        "Cherry Pie",
			Description: "Sweet and tart cherry pie",
			BakingTime:  50,
			BakingTemp:  350,
			Ingredients: []IngredientDTO{
				{Item: "cherries", Quantity: 4, Unit: "cup"},
				{Item: "sugar", Quantity: 1, Unit: "cup"},
				{Item: "cornstarch", Quantity: 3, Unit: "tbsp"},
				{Item: "flour", Quantity: 2.5, Unit: "cup"},
				{Item: "butter", Quantity: 3, Unit: "tbsp"},
			},
			PrepSteps:  []string{"pit_fruit", "make_dough", "assemble"},
			Difficulty: "medium",
		},
		{
			ID:          "pumpkin",
			Name:        "Pumpkin Pie",
			Description: "Classic pumpkin pie with spices",
			BakingTime:  60,
			BakingTemp:  325,
			Ingredients: []IngredientDTO{
				{Item: "pumpkin_puree", Quantity: 2, Unit: "cup"},
				{Item: "eggs", Quantity: 2, Unit: "whole"},
				{Item: "sugar", Quantity: 0.75, Unit: "cup"},
				{Item: "cinnamon", Quantity: 1, Unit: "tsp"},
				{Item: "nutmeg", Quantity: 0.5, Unit: "tsp"},
				{Item: "flour", Quantity: 1.5, Unit: "cup"},
			},
			PrepSteps:  []string{"mix_filling", "make_crust", "assemble"},
			Difficulty: "easy",
		},
		{
			ID:          "pecan",
			Name:        "Pecan Pie",
			Description: "Rich and nutty pecan pie",
			BakingTime:  55,
			BakingTemp:  350,
			Ingredients: []IngredientDTO{
				{Item: "pecans", Quantity: 1.5, Unit: "cup"},
				{Item: "corn_syrup", Quantity: 1, Unit: "cup"},
				{Item: "eggs", Quantity: 3, Unit: "whole"},
				{Item: "sugar", Quantity: 1, Unit: "cup"},
				{Item: "butter", Quantity: 3, Unit: "tbsp"},
				{Item: "flour", Quantity: 1.5, Unit: "cup"},
			},
			PrepSteps:  []string{"toast_pecans", "make_filling", "make_crust", "assemble"},
			Difficulty: "medium",
		},
		{
			ID:          "blueberry",
			Name:        "Blueberry Pie",
			Description: "Fresh blueberry pie",
			BakingTime:  45,
			BakingTemp:  375,
			Ingredients: []IngredientDTO{
				{Item: "blueberries", Quantity: 5, Unit: "cup"},
				{Item: "sugar", Quantity: 0.75, Unit: "cup"},
				{Item: "cornstarch", Quantity: 3, Unit: "tbsp"},
				{Item: "lemon_juice", Quantity: 1, Unit: "tbsp"},
				{Item: "flour", Quantity: 2.5, Unit: "cup"},
			},
			PrepSteps:  []string{"wash_fruit", "make_dough", "assemble"},
			Difficulty: "easy",
		},
	}
}
