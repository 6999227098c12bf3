package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler lists orders couriers can claim right now.
// The listing is advisory: the claim itself is still arbitrated by the atomic
// check-and-set, so a stale listing can never produce a double assignment.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for claimable-order queries.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns READY, unclaimed orders oldest first, so long-waiting orders
// surface at the top of every courier's list.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, number, restaurant_id, delivery_fee, updated_at
		FROM orders
		WHERE status = ? AND courier_id IS NULL
	`
	args := []any{order.Ready.String()}
	if query.RestaurantID() != nil {
		sql += " AND restaurant_id = ?"
		args = append(args, query.RestaurantID().Bytes())
	}
	sql += " ORDER BY updated_at"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetAvailableOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			number       string
			restaurantID uuid.UUID
			deliveryFee  string
			readySince   time.Time
		)
		if err = rows.Scan(&id, &number, &restaurantID, &deliveryFee, &readySince); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		restID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		fee, feeErr := kernel.NewMoneyFromString(deliveryFee)
		if feeErr != nil {
			return nil, feeErr
		}

		responses = append(responses, GetAvailableOrdersQueryResponse{
			ID:           orderID,
			Number:       number,
			RestaurantID: restID,
			DeliveryFee:  fee,
			ReadySince:   readySince,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}
