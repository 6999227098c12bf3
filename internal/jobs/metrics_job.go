package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// MetricsJob logs order status counts and average preparation time once an
// hour, giving operators a heartbeat in the logs without a metrics stack.
type MetricsJob struct {
	handler queries.GetOrderMetricsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMetricsJob creates a new job for logging hourly order metrics.
func NewMetricsJob(handler queries.GetOrderMetricsQueryHandler, logger *slog.Logger) *MetricsJob {
	return &MetricsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "metrics_job"),
	}
}

// Start begins the metrics job on an hourly cadence.
func (j *MetricsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderMetricsQuery()

		metrics, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Metrics collection failed", "error", err)
			return
		}

		attrs := make([]any, 0, 2*len(metrics.StatusCounts)+2)
		for status, count := range metrics.StatusCounts {
			attrs = append(attrs, status, count)
		}
		attrs = append(attrs, "avg_preparation_minutes", metrics.AvgPreparationMinutes)

		j.logger.InfoContext(ctx, "Hourly order metrics", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Metrics job started (running hourly)")
	return nil
}

// Stop stops the metrics job.
func (j *MetricsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Metrics job stopped")
}
