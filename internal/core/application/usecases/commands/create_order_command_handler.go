package commands

import (
	"context"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

const orderCreatedNote = "Order created"

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the new order together with its first audit record, then hands
// the order off to the saga dispatcher for asynchronous fulfillment.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, dispatcher)
//	cmd, _ := NewCreateOrderCommand(orderID, pieType, customer, address)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created is persisted and its fulfillment saga is running
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.RecipeCatalog
	dispatcher ports.SagaDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence, a RecipeCatalog
// to verify the ordered pie can actually be made, and a SagaDispatcher to
// start fulfillment.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.RecipeCatalog,
	dispatcher ports.SagaDispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

// Handle processes the order creation command.
// Creates the order in the ORDERED state and appends the creation record in
// the same transaction, then dispatches the fulfillment saga. Dispatch happens
// only after a successful commit, so the saga never races a missing row.
// Returns the created aggregate, so callers can answer with the stored
// values without a read-model round trip.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.catalog.Get(ctx, cmd.PieType().String()); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.PieType(), cmd.Customer(), cmd.Address())
	if err != nil {
		return nil, err
	}

	record, err := order.NewTransition(aggregate.ID(), nil, order.Ordered, orderCreatedNote, "")
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.TransitionLogRepository().Append(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(aggregate.ID())

	return aggregate, nil
}
