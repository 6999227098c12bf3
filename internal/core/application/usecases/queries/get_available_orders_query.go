// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projections straight
// from the database.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves orders a courier can claim: READY status
// with no courier bound yet, optionally narrowed to one restaurant.
type GetAvailableOrdersQuery struct {
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for claimable orders.
// Pass nil to list across all restaurants.
func NewGetAvailableOrdersQuery(restaurantID *kernel.UUID) (GetAvailableOrdersQuery, error) {
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return GetAvailableOrdersQuery{}, err
		}
	}

	return GetAvailableOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// RestaurantID returns the optional restaurant filter.
func (q GetAvailableOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}

// GetAvailableOrdersQueryResponse is one claimable order as shown to couriers.
type GetAvailableOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	RestaurantID kernel.UUID
	DeliveryFee  kernel.Money
	ReadySince   time.Time
}
