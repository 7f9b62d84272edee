package jobs

import (
	"context"
	"log/slog"

	"bakery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderRecoveryJob periodically re-dispatches the fulfillment saga for every
// order still in a non-terminal state. After a process restart this is what
// resumes interrupted sagas from their persisted state; during normal
// operation the dispatcher's in-flight guard makes re-dispatching a running
// order a no-op.
type OrderRecoveryJob struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher ports.SagaDispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOrderRecoveryJob creates a job that resumes unfinished order sagas.
func NewOrderRecoveryJob(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher ports.SagaDispatcher,
	logger *slog.Logger,
) *OrderRecoveryJob {
	return &OrderRecoveryJob{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "order_recovery_job"),
	}
}

// Start begins the recovery job, scanning for unfinished orders every ten seconds.
func (j *OrderRecoveryJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.uowFactory.Create().OrderRepository().GetAllUnfinished(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order recovery scan failed", "error", err)
			return
		}

		for _, o := range orders {
			j.dispatcher.Dispatch(o.ID())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order recovery job started (running every ten seconds)")
	return nil
}

// Stop stops the recovery job.
func (j *OrderRecoveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order recovery job stopped")
}
