// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. AutoRejectJob - Runs every minute to reject PLACED orders the restaurant
// never accepted within the configured threshold.
// 2. PaymentTimeoutJob - Runs every five minutes to cancel PENDING orders
// whose payment never arrived.
// 3. MetricsJob - Runs hourly to log order status counts and average
// preparation time.
// 4. CleanupJob - Runs every six hours to purge tickets and history records
// of terminal orders past the retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(rejectHandler, cancelHandler, metricsHandler, cleanup, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The enforcement jobs handle per-order failures internally; only sweep-level
// failures surface here and are logged. Failed job starts stop any already
// running jobs.
package jobs
