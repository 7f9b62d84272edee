package kernel

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a delivery destination with validated fields.
// Address is an immutable value object: street, city, state, and zip are
// all required. The zero value is invalid and will fail validation.
//
// Example:
//
//	addr, err := kernel.NewAddress("42 Orchard Lane", "Springfield", "IL", "62704")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Output: 42 Orchard Lane, Springfield, IL 62704
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string
	state  string
	zip    string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the given fields.
// All four fields must be non-blank. The state is a two-letter region
// code and is normalized to upper case.
func NewAddress(street string, city string, state string, zip string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setState(state),
		addr.setZip(zip),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed using the constructor.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the two-letter state code of the address.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code of the address.
func (a Address) Zip() string {
	return a.zip
}

// IsEqual compares two Addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city &&
		a.state == other.state && a.zip == other.zip
}

// String implements fmt.Stringer with a single-line postal rendition.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.state, a.zip)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("delivery street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("delivery city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return errs.NewValueIsRequiredError("delivery state")
	}
	if len(state) != 2 {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery state",
			fmt.Errorf("%q is not a two-letter state code", state),
		)
	}
	a.state = state
	return nil
}

func (a *Address) setZip(zip string) error {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return errs.NewValueIsRequiredError("delivery zip")
	}
	a.zip = zip
	return nil
}
