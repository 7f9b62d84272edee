package ports

import (
	"bakery/internal/core/domain/model/kernel"
)

// SagaDispatcher starts the fulfillment saga for an order as an independent
// task, detached from the caller. Dispatch returns immediately; saga failures
// are recorded on the order and never reach the dispatching caller.
//
// Implementations must guarantee at most one running saga per order id within
// the process, so a re-dispatch of an in-flight order is a no-op.
type SagaDispatcher interface {
	Dispatch(orderID kernel.UUID)
}
