package queries

import (
	"context"
	"database/sql"
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its state history from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
//
//	for _, entry := range detail.History {
//	    fmt.Printf("-> %s at %s\n", entry.To, entry.Timestamp)
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order row and its transitions in timestamp order.
// Returns an ObjectNotFoundError when no order exists for the id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.History, err = h.fetchHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pie_type,
			customer_name,
			customer_email,
			customer_phone,
			delivery_street,
			delivery_city,
			delivery_state,
			delivery_zip,
			state,
			picker_job_id,
			baker_job_id,
			delivery_id,
			estimated_delivery,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var state int
	var pickerJobID, bakerJobID, deliveryID sql.NullString

	err := row.Scan(
		&id,
		&resp.PieType,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.DeliveryStreet,
		&resp.DeliveryCity,
		&resp.DeliveryState,
		&resp.DeliveryZip,
		&state,
		&pickerJobID,
		&bakerJobID,
		&deliveryID,
		&resp.EstimatedDelivery,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.State = order.State(state).String()
	if pickerJobID.Valid {
		resp.PickerJobID = &pickerJobID.String
	}
	if bakerJobID.Valid {
		resp.BakerJobID = &bakerJobID.String
	}
	if deliveryID.Valid {
		resp.DeliveryID = &deliveryID.String
	}

	return resp, nil
}

func (h GetOrderQueryHandler) fetchHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]TransitionResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_state,
			to_state,
			timestamp,
			notes,
			error_message
		FROM order_transitions
		WHERE order_id = ?
		ORDER BY timestamp, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]TransitionResponse, 0)
	for rows.Next() {
		var entry TransitionResponse
		var fromState sql.NullInt16
		var toState int
		var notes, errorMessage sql.NullString

		if err = rows.Scan(&fromState, &toState, &entry.Timestamp, &notes, &errorMessage); err != nil {
			return nil, err
		}

		if fromState.Valid {
			from := order.State(fromState.Int16).String()
			entry.From = &from
		}
		entry.To = order.State(toState).String()
		entry.Notes = notes.String
		entry.ErrorMessage = errorMessage.String

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
