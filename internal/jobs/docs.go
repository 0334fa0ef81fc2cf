// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PaymentExpiryJob cancels orders that have been waiting for payment longer than the
// configured TTL. Cancellation goes through the regular status update, so every
// expired order produces the usual status change event.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	expiry := jobs.NewPaymentExpiryJob(expireHandler, 30*time.Minute, "0 * * * * *", m.ExpiredOrders, logger)
//	jobManager := jobs.NewJobManager(expiry)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds. A pass that is still running
// when the next tick fires makes that tick a no-op.
//
// # Error Handling
//
// - A failed pass is logged and retried on the next tick
// - Orders that could not be cancelled are counted as "failed" and picked up again later
// - Failed job starts will stop any already running jobs
package jobs
