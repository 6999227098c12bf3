package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetOrderMetricsQueryHandler computes the hourly operational snapshot.
type GetOrderMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderMetricsQueryHandler creates a handler for metrics aggregation.
func NewGetOrderMetricsQueryHandler(db *gorm.DB) GetOrderMetricsQueryHandler {
	return GetOrderMetricsQueryHandler{db: db}
}

// Handle counts orders per status and averages the measured preparation time
// over tickets that finished preparing.
func (h GetOrderMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderMetricsQuery,
) (GetOrderMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	response := GetOrderMetricsQueryResponse{
		StatusCounts: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderMetricsQueryResponse{}, err
		}
		response.StatusCounts[status] = count
	}
	if err = rows.Err(); err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	var avg sql.NullFloat64
	row := h.db.WithContext(ctx).Raw(`
		SELECT AVG(actual_minutes)
		FROM tickets
		WHERE actual_minutes IS NOT NULL
	`).Row()
	if err = row.Scan(&avg); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return GetOrderMetricsQueryResponse{}, err
	}
	if avg.Valid {
		response.AvgPreparationMinutes = avg.Float64
	}

	return response, nil
}
