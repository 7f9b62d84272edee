package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// TransitionLogRepository defines the persistence contract for the order audit trail.
// The log is strictly append-only: entries are never updated or deleted.
type TransitionLogRepository interface {
	// Append durably stores one transition record.
	// The record must be valid; prior entries are never touched.
	Append(ctx context.Context, record order.Transition) error

	// ListForOrder retrieves all transition records for an order,
	// ordered by timestamp ascending.
	ListForOrder(ctx context.Context, orderID kernel.UUID) ([]order.Transition, error)
}
