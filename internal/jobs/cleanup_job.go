package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CleanupJob purges supporting records of long-terminal orders: kitchen
// tickets and history rows older than the retention window. Orders themselves
// are never deleted; they remain the system of record.
type CleanupJob struct {
	db        *gorm.DB
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCleanupJob creates a new job for purging aged terminal-order records.
func NewCleanupJob(db *gorm.DB, retention time.Duration, logger *slog.Logger) *CleanupJob {
	return &CleanupJob{
		db:        db,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "cleanup_job"),
	}
}

// Start begins the cleanup job on a six-hour cadence.
func (j *CleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 */6 * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cleanup job started (running every 6 hours)")
	return nil
}

// Stop stops the cleanup job.
func (j *CleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cleanup job stopped")
}

func (j *CleanupJob) run(ctx context.Context) {
	cutoff := time.Now().Add(-j.retention)
	terminal := []string{
		order.Completed.String(),
		order.Cancelled.String(),
		order.Rejected.String(),
	}

	tickets := j.db.WithContext(ctx).Exec(
		`DELETE FROM tickets
		 WHERE order_id IN (
		     SELECT id FROM orders WHERE status IN ? AND updated_at < ?
		 )`, terminal, cutoff)
	if tickets.Error != nil {
		j.logger.ErrorContext(ctx, "Ticket cleanup failed", "error", tickets.Error)
		return
	}

	history := j.db.WithContext(ctx).Exec(
		`DELETE FROM order_history
		 WHERE order_id IN (
		     SELECT id FROM orders WHERE status IN ? AND updated_at < ?
		 )`, terminal, cutoff)
	if history.Error != nil {
		j.logger.ErrorContext(ctx, "History cleanup failed", "error", history.Error)
		return
	}

	if tickets.RowsAffected > 0 || history.RowsAffected > 0 {
		j.logger.InfoContext(ctx, "Purged aged terminal-order records",
			"tickets", tickets.RowsAffected,
			"history_rows", history.RowsAffected,
			"cutoff", cutoff)
	}
}
