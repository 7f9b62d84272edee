package kernel

import (
	"errors"
	"strings"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when attempting to use an improperly initialized Contact.
// Contacts must be created using the NewContact constructor to ensure validity.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"contact must be created via NewContact constructor")

// Contact represents customer contact details for an order.
// Contact is an immutable value object: name and email are required,
// phone is optional. The zero value is invalid and will fail validation.
//
// Example:
//
//	contact, err := kernel.NewContact("Jane Baker", "jane@example.com", "+1-555-0101")
//	if err != nil {
//	    // Handle validation error
//	}
type Contact struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewContact creates a new Contact with the given details.
// Name and email must be non-blank; phone may be empty.
// Returns a validation error describing the first missing field otherwise.
func NewContact(name string, email string, phone string) (Contact, error) {
	contact := Contact{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(contact.setName(name), contact.setEmail(email)); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate checks if the Contact was properly constructed using the constructor.
// The zero value of Contact is invalid and will fail this validation.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the customer's name.
func (c Contact) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c Contact) Email() string {
	return c.email
}

// Phone returns the customer's phone number. May be empty.
func (c Contact) Phone() string {
	return c.phone
}

// IsEqual compares two Contacts field by field.
func (c Contact) IsEqual(other Contact) bool {
	return c.name == other.name && c.email == other.email && c.phone == other.phone
}

func (c *Contact) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Contact) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("customer email")
	}
	c.email = email
	return nil
}
