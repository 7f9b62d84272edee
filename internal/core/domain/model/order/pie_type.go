package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// ErrPieTypeIsNotConstructed is returned when validating a zero-value PieType.
var ErrPieTypeIsNotConstructed = errs.NewValueIsRequiredError(
	"pie type must be created via NewPieType constructor")

// PieType is a value object identifying a product from the fixed catalog.
// The zero value is invalid; use NewPieType to construct one.
type PieType struct {
	name string
}

// getPieTypeNames returns the enumerated product catalog.
// The names double as recipe identifiers in the catalog store.
func getPieTypeNames() []string {
	return []string{"apple", "cherry", "pumpkin", "pecan", "blueberry"}
}

// NewPieType creates a PieType from its catalog name.
// Returns a validation error for names outside the catalog, so an order
// for an unknown product is rejected before any state exists.
func NewPieType(name string) (PieType, error) {
	for _, known := range getPieTypeNames() {
		if known == name {
			return PieType{name: name}, nil
		}
	}
	return PieType{}, errs.NewValueIsInvalidErrorWithCause(
		"pie type",
		fmt.Errorf("%q is not in the catalog", name),
	)
}

// Validate checks if the PieType was properly constructed.
func (p PieType) Validate() error {
	if p.name == "" {
		return ErrPieTypeIsNotConstructed
	}
	return nil
}

// String returns the catalog name, e.g. "apple".
func (p PieType) String() string {
	return p.name
}

// FruitIngredient returns the name of the ingredient line that holds the
// raw fruit for this pie, the pluralized pie type ("apple" -> "apples").
func (p PieType) FruitIngredient() string {
	return p.name + "s"
}

// IsEqual compares two PieTypes by name.
func (p PieType) IsEqual(other PieType) bool {
	return p.name == other.name
}
