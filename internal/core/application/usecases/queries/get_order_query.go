// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read projections straight
// from the database with raw SQL.
package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its full state history.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", detail.ID, detail.State)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's details.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of one order: current state,
// collaborator job handles, and the complete audit trail in the order the
// transitions happened.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	PieType           string
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	DeliveryStreet    string
	DeliveryCity      string
	DeliveryState     string
	DeliveryZip       string
	State             string
	PickerJobID       *string
	BakerJobID        *string
	DeliveryID        *string
	EstimatedDelivery time.Time
	CreatedAt         time.Time
	History           []TransitionResponse
}

// TransitionResponse is one entry of an order's state history.
// From is nil for the creation entry.
type TransitionResponse struct {
	From         *string
	To           string
	Timestamp    time.Time
	Notes        string
	ErrorMessage string
}
