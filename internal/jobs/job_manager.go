package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoRejectJob     *AutoRejectJob
	paymentTimeoutJob *PaymentTimeoutJob
	metricsJob        *MetricsJob
	cleanupJob        *CleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	rejectStaleHandler commands.RejectStaleOrdersCommandHandler,
	cancelUnpaidHandler commands.CancelUnpaidOrdersCommandHandler,
	metricsHandler queries.GetOrderMetricsQueryHandler,
	db *gorm.DB,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoRejectJob:     NewAutoRejectJob(rejectStaleHandler, logger),
		paymentTimeoutJob: NewPaymentTimeoutJob(cancelUnpaidHandler, logger),
		metricsJob:        NewMetricsJob(metricsHandler, logger),
		cleanupJob:        NewCleanupJob(db, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	started := make([]interface{ Stop() }, 0, 4)

	for _, j := range []struct {
		name string
		job  interface {
			Start() error
			Stop()
		}
	}{
		{"auto reject", jm.autoRejectJob},
		{"payment timeout", jm.paymentTimeoutJob},
		{"metrics", jm.metricsJob},
		{"cleanup", jm.cleanupJob},
	} {
		if err := j.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, s := range started {
				s.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		started = append(started, j.job)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoRejectJob.Stop()
	jm.paymentTimeoutJob.Stop()
	jm.metricsJob.Stop()
	jm.cleanupJob.Stop()
}
