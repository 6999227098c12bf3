package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentTimeoutJob sweeps PENDING orders whose payment never arrived.
// Runs every five minutes; the payment threshold lives in the sweep handler.
type PaymentTimeoutJob struct {
	handler commands.CancelUnpaidOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentTimeoutJob creates a new job for cancelling unpaid orders.
func NewPaymentTimeoutJob(handler commands.CancelUnpaidOrdersCommandHandler, logger *slog.Logger) *PaymentTimeoutJob {
	return &PaymentTimeoutJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_timeout_job"),
	}
}

// Start begins the payment-timeout sweep on a five-minute cadence.
func (j *PaymentTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCancelUnpaidOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment timeout job started (running every 5 minutes)")
	return nil
}

// Stop stops the payment timeout job.
func (j *PaymentTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment timeout job stopped")
}
