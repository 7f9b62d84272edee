package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

// MaxListedOrders caps how many orders a listing returns.
const MaxListedOrders = 100

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the most recent orders, newest first,
// capped at MaxListedOrders.
//
// Example:
//
//	query := NewListOrdersQuery()
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %-10s %s\n", o.ID, o.State, o.CustomerName)
//	}
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a parameterless query for the order listing.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one row of the order listing.
type ListOrdersQueryResponse struct {
	ID                kernel.UUID
	PieType           string
	CustomerName      string
	State             string
	EstimatedDelivery time.Time
	CreatedAt         time.Time
}
