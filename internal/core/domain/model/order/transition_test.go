package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

func TestNewTransition(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("creation record has nil from state", func(t *testing.T) {
		before := time.Now()
		rec, err := order.NewTransition(orderID, nil, order.Ordered, "Order created", "")

		require.NoError(t, err)
		require.NoError(t, rec.Validate())
		assert.Equal(t, orderID, rec.OrderID())
		assert.Nil(t, rec.From())
		assert.Equal(t, order.Ordered, rec.To())
		assert.Equal(t, "Order created", rec.Note())
		assert.Empty(t, rec.ErrorMessage())
		assert.False(t, rec.At().Before(before))
	})

	t.Run("error record carries the failure message", func(t *testing.T) {
		from := order.Picking
		rec, err := order.NewTransition(orderID, &from, order.Errored, "",
			"SERVICE_UNAVAILABLE: Fruit picker robots are currently offline")

		require.NoError(t, err)
		require.NotNil(t, rec.From())
		assert.Equal(t, order.Picking, *rec.From())
		assert.Equal(t, order.Errored, rec.To())
		assert.Equal(t, "SERVICE_UNAVAILABLE: Fruit picker robots are currently offline", rec.ErrorMessage())
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		var id kernel.UUID
		_, err := order.NewTransition(id, nil, order.Ordered, "", "")
		require.Error(t, err)
	})

	t.Run("rejects invalid states", func(t *testing.T) {
		bad := order.Unknown
		_, err := order.NewTransition(orderID, &bad, order.Picking, "", "")
		require.Error(t, err)

		_, err = order.NewTransition(orderID, nil, order.Unknown, "", "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var rec order.Transition
		require.ErrorIs(t, rec.Validate(), order.ErrTransitionIsNotConstructed)
	})
}

func TestRestoreTransition(t *testing.T) {
	orderID := kernel.NewUUID()
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	from := order.Ordered

	rec, err := order.RestoreTransition(orderID, &from, order.Picking, at, "", "")

	require.NoError(t, err)
	assert.Equal(t, at, rec.At())
	assert.Equal(t, order.Picking, rec.To())
}
