package commands

import "time"

// SagaSettings holds the per-stage settle delays of the fulfillment saga.
// After submitting a collaborator job the driver waits the stage's settle
// delay and then advances, trusting the collaborator to finish within it.
// Tests inject zero delays to run the saga synchronously.
type SagaSettings struct {
	PickingSettle    time.Duration
	PreppingSettle   time.Duration
	BakingSettle     time.Duration
	DeliveringSettle time.Duration
}

// DefaultSagaSettings returns the production settle delays.
func DefaultSagaSettings() SagaSettings {
	return SagaSettings{
		PickingSettle:    5 * time.Second,
		PreppingSettle:   3 * time.Second,
		BakingSettle:     8 * time.Second,
		DeliveringSettle: 10 * time.Second,
	}
}
