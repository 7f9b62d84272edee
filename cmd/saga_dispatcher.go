package cmd

import (
	"context"
	"log/slog"
	"sync"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
)

// GoroutineSagaDispatcher runs the fulfillment saga for an order on its own
// goroutine, detached from the dispatching caller. A per-process registry of
// in-flight order ids makes re-dispatch of a running order a no-op, so the
// recovery job can re-dispatch unfinished orders without spawning duplicates.
type GoroutineSagaDispatcher struct {
	mu       sync.Mutex
	inFlight map[kernel.UUID]struct{}
	handler  commands.AdvanceOrderCommandHandler
	logger   *slog.Logger
}

func NewGoroutineSagaDispatcher(logger *slog.Logger) *GoroutineSagaDispatcher {
	return &GoroutineSagaDispatcher{
		inFlight: make(map[kernel.UUID]struct{}),
		logger:   logger.With("component", "saga_dispatcher"),
	}
}

// Bind sets the saga driver. The dispatcher and the driver reference each
// other (order creation dispatches the saga, the saga is built with the same
// unit-of-work factory), so the handler is attached after construction.
func (d *GoroutineSagaDispatcher) Bind(handler commands.AdvanceOrderCommandHandler) {
	d.handler = handler
}

// Dispatch starts the saga for the order and returns immediately.
// The saga runs with context.Background: once an order is accepted its
// fulfillment must not die with the request that created it.
func (d *GoroutineSagaDispatcher) Dispatch(orderID kernel.UUID) {
	d.mu.Lock()
	if _, running := d.inFlight[orderID]; running {
		d.mu.Unlock()
		return
	}
	d.inFlight[orderID] = struct{}{}
	d.mu.Unlock()

	go func() {
		defer func() {
			d.mu.Lock()
			delete(d.inFlight, orderID)
			d.mu.Unlock()
		}()

		cmd, err := commands.NewAdvanceOrderCommand(orderID)
		if err != nil {
			d.logger.Error("invalid saga dispatch", "order_id", orderID.String(), "error", err)
			return
		}

		if err := d.handler.Handle(context.Background(), cmd); err != nil {
			d.logger.Error("saga stopped on infrastructure error",
				"order_id", orderID.String(), "error", err)
		}
	}()
}
