package order

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// EstimatedDeliveryLead is how far ahead of creation time an order's
// estimated delivery is set.
const EstimatedDeliveryLead = 2 * time.Hour

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a pie order in the system. It is the aggregate root that manages
// the order lifecycle from creation through fulfillment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid pie type, customer contact, and delivery address
//   - The current state is always one of the enumerated states and only
//     ever changes via a transition the state table allows
//   - Terminal orders (COMPLETED, ERROR) never change state again
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// pieType identifies the product from the fixed catalog
	pieType PieType

	// customer holds the ordering customer's contact details
	customer kernel.Contact

	// address is the delivery destination
	address kernel.Address

	// state is the current position in the order lifecycle
	state State

	// pickerJobID is the harvesting service's job handle (nil until picking runs)
	pickerJobID *string

	// bakerJobID is the baking service's job handle (nil until baking runs)
	bakerJobID *string

	// deliveryID is the delivery service's job handle (nil until delivery runs)
	deliveryID *string

	// estimatedDelivery is when the order is expected to arrive
	estimatedDelivery time.Time

	// createdAt is when the order was placed
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the ORDERED state. This is the only way to
// create a fresh order, ensuring all business invariants hold from the start.
// The estimated delivery time is set EstimatedDeliveryLead ahead of now.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - pieType: Product from the enumerated catalog
//   - customer: Validated customer contact details
//   - address: Validated delivery destination
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, pieType PieType, customer kernel.Contact, address kernel.Address) (*Order, error) {
	now := time.Now()
	order := &Order{
		state:             Ordered,
		estimatedDelivery: now.Add(EstimatedDeliveryLead),
		createdAt:         now,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPieType(pieType),
		order.setCustomer(customer),
		order.setAddress(address),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// state and any job handles recorded during previous stages. The state must be
// a valid member of the enumeration; job handles may be nil.
func RestoreOrder(
	id kernel.UUID,
	pieType PieType,
	customer kernel.Contact,
	address kernel.Address,
	state State,
	pickerJobID *string,
	bakerJobID *string,
	deliveryID *string,
	estimatedDelivery time.Time,
	createdAt time.Time,
) (*Order, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		state:             state,
		pickerJobID:       pickerJobID,
		bakerJobID:        bakerJobID,
		deliveryID:        deliveryID,
		estimatedDelivery: estimatedDelivery,
		createdAt:         createdAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPieType(pieType),
		order.setCustomer(customer),
		order.setAddress(address),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PieType returns the ordered product.
func (o *Order) PieType() PieType {
	return o.pieType
}

// Customer returns the ordering customer's contact details.
func (o *Order) Customer() kernel.Contact {
	return o.customer
}

// Address returns the delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// State returns the current lifecycle state of the order.
func (o *Order) State() State {
	return o.state
}

// PickerJobID returns the harvesting job handle, or nil if picking has not run.
func (o *Order) PickerJobID() *string {
	return o.pickerJobID
}

// BakerJobID returns the baking job handle, or nil if baking has not run.
func (o *Order) BakerJobID() *string {
	return o.bakerJobID
}

// DeliveryID returns the delivery job handle, or nil if delivery has not run.
func (o *Order) DeliveryID() *string {
	return o.deliveryID
}

// EstimatedDelivery returns when the order is expected to arrive.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order to a new lifecycle state.
//
// The transition must be present in the state table; anything else returns
// an InvalidTransitionError and leaves the order unchanged. Because terminal
// states have no table entries, a COMPLETED or ERROR order can never move.
func (o *Order) TransitionTo(newState State) error {
	if err := newState.Validate(); err != nil {
		return err
	}

	if !CanTransition(o.state, newState) {
		return &InvalidTransitionError{From: o.state, To: newState}
	}

	o.state = newState
	return nil
}

// SetPickerJobID records the harvesting service's job handle on the order.
func (o *Order) SetPickerJobID(jobID string) error {
	if jobID == "" {
		return errs.NewValueIsRequiredError("picker job id")
	}
	o.pickerJobID = &jobID
	return nil
}

// SetBakerJobID records the baking service's job handle on the order.
func (o *Order) SetBakerJobID(jobID string) error {
	if jobID == "" {
		return errs.NewValueIsRequiredError("baker job id")
	}
	o.bakerJobID = &jobID
	return nil
}

// SetDeliveryID records the delivery service's job handle on the order.
func (o *Order) SetDeliveryID(deliveryID string) error {
	if deliveryID == "" {
		return errs.NewValueIsRequiredError("delivery id")
	}
	o.deliveryID = &deliveryID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPieType(pieType PieType) error {
	if err := pieType.Validate(); err != nil {
		return err
	}
	o.pieType = pieType
	return nil
}

func (o *Order) setCustomer(customer kernel.Contact) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}
