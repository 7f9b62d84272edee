package order

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

// ErrTransitionIsNotConstructed is returned when validating a zero-value Transition.
var ErrTransitionIsNotConstructed = errors.New(
	"Transition must be created via NewTransition or RestoreTransition constructor")

// Transition is an immutable audit record capturing one state change of an order.
// Records are append-only: they are written once when the change happens and are
// never updated or deleted, forming the order's full history.
//
// The from-state is nil only for the record written at order creation.
type Transition struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	from         *State
	to           State
	at           time.Time
	note         string
	errorMessage string

	guard guard.ConstructorGuard
}

// NewTransition creates an audit record for a state change happening now.
// The from-state may be nil for the initial creation record; when present it
// must be a valid state. Note and errorMessage are optional free text.
func NewTransition(orderID kernel.UUID, from *State, to State, note string, errorMessage string) (Transition, error) {
	if err := orderID.Validate(); err != nil {
		return Transition{}, err
	}
	if from != nil {
		if err := from.Validate(); err != nil {
			return Transition{}, err
		}
	}
	if err := to.Validate(); err != nil {
		return Transition{}, err
	}

	return Transition{
		orderID:      orderID,
		from:         from,
		to:           to,
		at:           time.Now(),
		note:         note,
		errorMessage: errorMessage,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreTransition reconstructs an audit record from persistence with its
// original timestamp.
func RestoreTransition(
	orderID kernel.UUID,
	from *State,
	to State,
	at time.Time,
	note string,
	errorMessage string,
) (Transition, error) {
	t, err := NewTransition(orderID, from, to, note, errorMessage)
	if err != nil {
		return Transition{}, err
	}
	t.at = at
	return t, nil
}

// Validate ensures the Transition was created through a constructor.
func (t Transition) Validate() error {
	return t.guard.Validate(ErrTransitionIsNotConstructed)
}

// OrderID returns the identifier of the order this record belongs to.
func (t Transition) OrderID() kernel.UUID {
	return t.orderID
}

// From returns the state the order left, or nil for the creation record.
func (t Transition) From() *State {
	return t.from
}

// To returns the state the order entered.
func (t Transition) To() State {
	return t.to
}

// At returns when the transition happened.
func (t Transition) At() time.Time {
	return t.at
}

// Note returns the optional human-readable note.
func (t Transition) Note() string {
	return t.note
}

// ErrorMessage returns the failure message for ERROR transitions, empty otherwise.
func (t Transition) ErrorMessage() string {
	return t.errorMessage
}
