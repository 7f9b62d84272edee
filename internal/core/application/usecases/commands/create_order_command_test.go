package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	pieType, err := order.NewPieType("cherry")
	require.NoError(t, err)
	customer, err := kernel.NewContact("Bob Baker", "bob@example.com", "")
	require.NoError(t, err)
	address, err := kernel.NewAddress("7 Maple Street", "Portland", "OR", "97201")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(id, pieType, customer, address)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, pieType, cmd.PieType())
	assert.Equal(t, customer, cmd.Customer())
	assert.Equal(t, address, cmd.Address())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	pieType, _ := order.NewPieType("apple")
	customer, _ := kernel.NewContact("Bob Baker", "bob@example.com", "")
	address, _ := kernel.NewAddress("7 Maple Street", "Portland", "OR", "97201")

	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, pieType, customer, address)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_UnconstructedValueObjects(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, order.PieType{}, kernel.Contact{}, kernel.Address{})
	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
