package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// State represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	ORDERED ──> PICKING ──> PREPPING ──> BAKING ──> DELIVERING ──> COMPLETED
//	   │           │            │           │            │
//	   └───────────┴────────────┴───────────┴────────────┴──> ERROR
//
// COMPLETED and ERROR are terminal states with no outgoing transitions.
//
// State is a value object that validates state transitions
// and provides string representations for persistence and display.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Ordered is the initial state when an order is first created.
	Ordered

	// Picking indicates raw fruit is being harvested for the order.
	Picking

	// Prepping indicates the kitchen is preparing dough and filling.
	Prepping

	// Baking indicates the pie is in the oven.
	Baking

	// Delivering indicates the pie is out for delivery.
	Delivering

	// Completed indicates the order has been fulfilled and delivered.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Errored indicates a fulfillment stage failed.
	// This is a terminal state; the failure is preserved in the transition log.
	Errored
)

// getStateStrings returns a map of State values to their string representations.
// All states are included for string conversion.
func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:    "UNKNOWN",
		Ordered:    "ORDERED",
		Picking:    "PICKING",
		Prepping:   "PREPPING",
		Baking:     "BAKING",
		Delivering: "DELIVERING",
		Completed:  "COMPLETED",
		Errored:    "ERROR",
	}
}

// getValidStateStrings returns a map of only valid State values.
// Only valid states are included to support validation and parsing.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Ordered:    "ORDERED",
		Picking:    "PICKING",
		Prepping:   "PREPPING",
		Baking:     "BAKING",
		Delivering: "DELIVERING",
		Completed:  "COMPLETED",
		Errored:    "ERROR",
	}
}

// getStateTransitions returns the legal transition table.
// The non-error successor is always listed first, so Next can rely on ordering.
func getStateTransitions() map[State][]State {
	return map[State][]State{
		Ordered:    {Picking, Errored},
		Picking:    {Prepping, Errored},
		Prepping:   {Baking, Errored},
		Baking:     {Delivering, Errored},
		Delivering: {Completed, Errored},
		Completed:  {},
		Errored:    {},
	}
}

// CanTransition reports whether the transition from one state to another is legal.
// Returns false for unknown source states.
func CanTransition(from State, to State) bool {
	allowed, ok := getStateTransitions()[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Next returns the sole non-error successor of the state.
// The second return value is false for terminal and unknown states.
// Next is a convenience for walking the happy path; it is never used
// to reach the ERROR state.
func (s State) Next() (State, bool) {
	allowed, ok := getStateTransitions()[s]
	if !ok || len(allowed) == 0 {
		return Unknown, false
	}
	return allowed[0], true
}

// IsTerminal reports whether the state has no outgoing transitions.
func (s State) IsTerminal() bool {
	allowed, ok := getStateTransitions()[s]
	return ok && len(allowed) == 0
}

// Validate checks if the State value is valid.
//
// Valid states are: Ordered, Picking, Prepping, Baking, Delivering, Completed, Errored.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure State values from external sources
// (e.g., database, API) are valid before use.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the wire-format name of the state, e.g. "ORDERED".
// Invalid values render as "UNKNOWN". Implements fmt.Stringer and is
// safe to call on any State value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StateFromString parses a wire-format state name back into a State.
// Returns an error for names outside the enumeration.
func StateFromString(name string) (State, error) {
	for state, str := range getValidStateStrings() {
		if str == name {
			return state, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"state is invalid",
		fmt.Errorf("%q is not a valid state name", name),
	)
}

// InvalidTransitionError indicates an attempted state change that is not in the
// transition table. It signals a programming-contract violation: the saga driver
// only ever requests transitions the table allows.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
