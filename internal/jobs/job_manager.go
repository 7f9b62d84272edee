package jobs

import (
	"fmt"
	"log/slog"

	"bakery/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRecoveryJob *OrderRecoveryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher ports.SagaDispatcher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderRecoveryJob: NewOrderRecoveryJob(uowFactory, dispatcher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRecoveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start order recovery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRecoveryJob.Stop()
}
