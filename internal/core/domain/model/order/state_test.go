package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/internal/core/domain/model/order"
)

func allStates() []order.State {
	return []order.State{
		order.Ordered,
		order.Picking,
		order.Prepping,
		order.Baking,
		order.Delivering,
		order.Completed,
		order.Errored,
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[order.State][]order.State{
		order.Ordered:    {order.Picking, order.Errored},
		order.Picking:    {order.Prepping, order.Errored},
		order.Prepping:   {order.Baking, order.Errored},
		order.Baking:     {order.Delivering, order.Errored},
		order.Delivering: {order.Completed, order.Errored},
		order.Completed:  {},
		order.Errored:    {},
	}

	for from, tos := range allowed {
		legal := make(map[order.State]bool, len(tos))
		for _, to := range tos {
			legal[to] = true
		}

		for _, to := range allStates() {
			got := order.CanTransition(from, to)
			assert.Equal(t, legal[to], got, "CanTransition(%s, %s)", from, to)
		}
	}

	t.Run("unknown from state", func(t *testing.T) {
		assert.False(t, order.CanTransition(order.Unknown, order.Picking))
		assert.False(t, order.CanTransition(order.State(42), order.Errored))
	})

	t.Run("no self transitions", func(t *testing.T) {
		for _, s := range allStates() {
			assert.False(t, order.CanTransition(s, s), "self transition for %s", s)
		}
	})
}

func TestState_Next(t *testing.T) {
	tests := []struct {
		current order.State
		next    order.State
		ok      bool
	}{
		{order.Ordered, order.Picking, true},
		{order.Picking, order.Prepping, true},
		{order.Prepping, order.Baking, true},
		{order.Baking, order.Delivering, true},
		{order.Delivering, order.Completed, true},
		{order.Completed, order.Unknown, false},
		{order.Errored, order.Unknown, false},
		{order.Unknown, order.Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			next, ok := tt.current.Next()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestState_IsTerminal(t *testing.T) {
	for _, s := range allStates() {
		terminal := s == order.Completed || s == order.Errored
		assert.Equal(t, terminal, s.IsTerminal(), "IsTerminal(%s)", s)
	}
	assert.False(t, order.Unknown.IsTerminal())
}

func TestState_Validate(t *testing.T) {
	for _, s := range allStates() {
		require.NoError(t, s.Validate(), "state %s should be valid", s)
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.State(42).Validate())
}

func TestState_String(t *testing.T) {
	tests := map[order.State]string{
		order.Ordered:    "ORDERED",
		order.Picking:    "PICKING",
		order.Prepping:   "PREPPING",
		order.Baking:     "BAKING",
		order.Delivering: "DELIVERING",
		order.Completed:  "COMPLETED",
		order.Errored:    "ERROR",
		order.Unknown:    "UNKNOWN",
		order.State(42):  "UNKNOWN",
	}

	for state, want := range tests {
		assert.Equal(t, want, state.String())
	}
}

func TestStateFromString(t *testing.T) {
	t.Run("round trips all valid states", func(t *testing.T) {
		for _, s := range allStates() {
			parsed, err := order.StateFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StateFromString("SHIPPED")
		require.Error(t, err)

		_, err = order.StateFromString("")
		require.Error(t, err)
	})
}
