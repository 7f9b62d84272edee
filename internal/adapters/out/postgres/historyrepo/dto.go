// Package historyrepo persists the append-only order transition log.
// Every state change of an order leaves exactly one row here; rows are never
// updated or deleted, making the table a complete audit trail.
package historyrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TransitionDTO represents one row of the order transition log.
// FromState is null only for the creation entry.
type TransitionDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	FromState    *int      `gorm:"type:smallint"`
	ToState      int       `gorm:"type:smallint;not null"`
	Timestamp    time.Time `gorm:"not null"`
	Notes        string
	ErrorMessage string
}

// TableName specifies the database table name for transition records.
func (TransitionDTO) TableName() string {
	return "order_transitions"
}

// fromDomain converts a transition record to its database representation.
func fromDomain(record order.Transition) TransitionDTO {
	var fromState *int
	if from := record.From(); from != nil {
		raw := int(*from)
		fromState = &raw
	}

	return TransitionDTO{
		OrderID:      record.OrderID().Bytes(),
		FromState:    fromState,
		ToState:      int(record.To()),
		Timestamp:    record.At(),
		Notes:        record.Note(),
		ErrorMessage: record.ErrorMessage(),
	}
}

// toDomain converts a database row back to a transition record.
func toDomain(dto TransitionDTO) (order.Transition, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Transition{}, err
	}

	var from *order.State
	if dto.FromState != nil {
		state := order.State(*dto.FromState)
		from = &state
	}

	return order.RestoreTransition(
		orderID,
		from,
		order.State(dto.ToState),
		dto.Timestamp,
		dto.Notes,
		dto.ErrorMessage,
	)
}
