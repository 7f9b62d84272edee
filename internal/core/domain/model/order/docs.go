// Package order contains the order aggregate and its lifecycle state machine.
//
// An order moves through a fixed sequence of states as the fulfillment workflow
// advances: ORDERED -> PICKING -> PREPPING -> BAKING -> DELIVERING -> COMPLETED,
// with ERROR reachable from every non-terminal state. COMPLETED and ERROR are
// terminal; an order that reaches either never changes state again.
//
// The package exposes:
//   - State: the enumerated lifecycle states and the legal transition table
//   - PieType: the enumerated product catalog
//   - Order: the aggregate root, mutated only through validated transitions
//   - Transition: the immutable audit record appended for every state change
package order
