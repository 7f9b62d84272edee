// Package jobs provides scheduled background tasks for the bakery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OrderRecoveryJob - Runs every ten seconds to re-dispatch the fulfillment
// saga for orders stuck in a non-terminal state, resuming work interrupted by
// a process restart.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, dispatcher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Recovery scan failures are logged and retried on the next tick. Dispatching
// an order whose saga is already running is a no-op, so the job never
// double-runs a saga.
package jobs
