package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoRejectJob sweeps PLACED orders the restaurant never accepted.
// Runs every minute; the acceptance threshold lives in the sweep handler.
type AutoRejectJob struct {
	handler commands.RejectStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoRejectJob creates a new job for rejecting stale orders.
func NewAutoRejectJob(handler commands.RejectStaleOrdersCommandHandler, logger *slog.Logger) *AutoRejectJob {
	return &AutoRejectJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "auto_reject_job"),
	}
}

// Start begins the auto-reject sweep on a one-minute cadence.
func (j *AutoRejectJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRejectStaleOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Auto-reject sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-reject job started (running every minute)")
	return nil
}

// Stop stops the auto-reject job.
func (j *AutoRejectJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-reject job stopped")
}
