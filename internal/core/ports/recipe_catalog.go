package ports

import (
	"context"

	"bakery/internal/core/domain/model/recipe"
)

// RecipeCatalog provides read access to the recipe reference data.
// The catalog is seeded at process start and treated as immutable.
type RecipeCatalog interface {
	// Get retrieves the recipe for a pie type.
	// Returns an ObjectNotFoundError when no recipe exists for the type.
	Get(ctx context.Context, pieType string) (*recipe.Recipe, error)
}
