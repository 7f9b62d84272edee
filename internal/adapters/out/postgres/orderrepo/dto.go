// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The state column is indexed for the recovery job's unfinished-order scan,
// created_at for the newest-first listing.
type OrderDTO struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	PieType           string      `gorm:"type:varchar(32);not null"`
	Customer          CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Delivery          AddressDTO  `gorm:"embedded;embeddedPrefix:delivery_"`
	State             int         `gorm:"type:smallint;index"`
	PickerJobID       *string
	BakerJobID        *string
	DeliveryID        *string
	EstimatedDelivery time.Time
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact columns.
type CustomerDTO struct {
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
	Phone string
}

// AddressDTO represents the embedded delivery address columns.
type AddressDTO struct {
	Street string `gorm:"not null"`
	City   string `gorm:"not null"`
	State  string `gorm:"type:varchar(2);not null"`
	Zip    string `gorm:"type:varchar(10);not null"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:      aggregate.ID().Bytes(),
		PieType: aggregate.PieType().String(),
		Customer: CustomerDTO{
			Name:  aggregate.Customer().Name(),
			Email: aggregate.Customer().Email(),
			Phone: aggregate.Customer().Phone(),
		},
		Delivery: AddressDTO{
			Street: aggregate.Address().Street(),
			City:   aggregate.Address().City(),
			State:  aggregate.Address().State(),
			Zip:    aggregate.Address().Zip(),
		},
		State:             int(aggregate.State()),
		PickerJobID:       aggregate.PickerJobID(),
		BakerJobID:        aggregate.BakerJobID(),
		DeliveryID:        aggregate.DeliveryID(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including state and collaborator job
// handles using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pieType, err := order.NewPieType(dto.PieType)
	if err != nil {
		return nil, err
	}

	customer, err := kernel.NewContact(dto.Customer.Name, dto.Customer.Email, dto.Customer.Phone)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Delivery.Street, dto.Delivery.City, dto.Delivery.State, dto.Delivery.Zip)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		pieType,
		customer,
		address,
		order.State(dto.State),
		dto.PickerJobID,
		dto.BakerJobID,
		dto.DeliveryID,
		dto.EstimatedDelivery,
		dto.CreatedAt,
	)
}
