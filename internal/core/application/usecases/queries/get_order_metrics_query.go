package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderMetricsQueryIsNotConstructed = errors.New(
	"GetOrderMetricsQuery must be created via NewGetOrderMetricsQuery constructor",
)

// GetOrderMetricsQuery aggregates the operational snapshot logged hourly by
// the metrics job: orders per status and the average measured preparation time.
type GetOrderMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderMetricsQuery creates a metrics aggregation query.
func NewGetOrderMetricsQuery() GetOrderMetricsQuery {
	return GetOrderMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMetricsQueryIsNotConstructed)
}

// GetOrderMetricsQueryResponse is the aggregated snapshot.
type GetOrderMetricsQueryResponse struct {
	// StatusCounts maps the canonical status string to the number of orders
	// currently in it. Statuses with no orders are absent.
	StatusCounts map[string]int64

	// AvgPreparationMinutes is the mean of actual preparation durations over
	// all tickets that completed preparation; zero when none have.
	AvgPreparationMinutes float64
}
