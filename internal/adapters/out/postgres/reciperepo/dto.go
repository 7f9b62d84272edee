// Package reciperepo stores the recipe reference data the bakery can make.
// The catalog is seeded at process start and read-only afterwards.
package reciperepo

import (
	"bakery/internal/core/domain/model/recipe"
)

// RecipeDTO represents the database structure for recipes. The recipe id is
// the pie type name, so catalog lookups by ordered product are primary-key
// reads. Ingredients and prep steps are stored as JSON documents.
type RecipeDTO struct {
	ID          string `gorm:"type:varchar(32);primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	BakingTime  int             `gorm:"not null"`
	BakingTemp  int             `gorm:"not null"`
	Ingredients []IngredientDTO `gorm:"serializer:json;type:jsonb"`
	PrepSteps   []string        `gorm:"serializer:json;type:jsonb"`
	Difficulty  string
}

// TableName specifies the database table name for recipes.
func (RecipeDTO) TableName() string {
	return "recipes"
}

// IngredientDTO is one ingredient line within a recipe's JSON document.
type IngredientDTO struct {
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// toDomain converts a database DTO to a recipe aggregate.
func toDomain(dto RecipeDTO) (*recipe.Recipe, error) {
	ingredients := make([]recipe.Ingredient, 0, len(dto.Ingredients))
	for _, ing := range dto.Ingredients {
		ingredients = append(ingredients, recipe.Ingredient{
			Item:     ing.Item,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	return recipe.NewRecipe(
		dto.ID,
		dto.Name,
		dto.Description,
		dto.BakingTime,
		dto.BakingTemp,
		ingredients,
		dto.PrepSteps,
		dto.Difficulty,
	)
}
