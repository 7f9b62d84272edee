package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new pie order.
// Encapsulates the product choice, customer contact, and delivery destination.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	pieType, _ := order.NewPieType("apple")
//	cmd, err := NewCreateOrderCommand(orderID, pieType, customer, address)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	pieType  order.PieType
	customer kernel.Contact
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// All value objects must themselves be properly constructed; any
// validation failure is returned before state exists anywhere.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	pieType order.PieType,
	customer kernel.Contact,
	address kernel.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPieType(pieType),
		cmd.setCustomer(customer),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PieType returns the ordered product.
func (c CreateOrderCommand) PieType() order.PieType {
	return c.pieType
}

// Customer returns the customer's contact details.
func (c CreateOrderCommand) Customer() kernel.Contact {
	return c.customer
}

// Address returns the delivery destination.
func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPieType(pieType order.PieType) error {
	if err := pieType.Validate(); err != nil {
		return err
	}
	c.pieType = pieType
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer kernel.Contact) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
