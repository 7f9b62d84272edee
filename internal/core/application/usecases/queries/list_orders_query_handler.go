package queries

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the most recent orders from the database.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//	fmt.Printf("%d recent orders\n", len(orders))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns up to MaxListedOrders orders, newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pie_type,
			customer_name,
			state,
			estimated_delivery,
			created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT ?
	`, MaxListedOrders).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var resp ListOrdersQueryResponse
		var id uuid.UUID
		var state int

		err = rows.Scan(
			&id,
			&resp.PieType,
			&resp.CustomerName,
			&state,
			&resp.EstimatedDelivery,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.State = order.State(state).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
