package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current state and job handles.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnfinished retrieves all orders in a non-terminal state.
	// Used by the recovery job to resume sagas interrupted by a restart.
	GetAllUnfinished(ctx context.Context) ([]*order.Order, error)
}
