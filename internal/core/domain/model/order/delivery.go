package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Delivery is the courier-binding and timing data embedded in an order.
// At most one courier may be bound at a time; binding is irreversible except
// through the explicit decline/reassignment path on the Order aggregate.
type Delivery struct {
	courierID           *kernel.UUID
	pickupAt            *time.Time
	estimatedDeliveryAt *time.Time
	deliveredAt         *time.Time
}

// RestoreDelivery reconstructs the delivery record from persistence.
func RestoreDelivery(courierID *kernel.UUID, pickupAt, estimatedDeliveryAt, deliveredAt *time.Time) Delivery {
	return Delivery{
		courierID:           courierID,
		pickupAt:            pickupAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		deliveredAt:         deliveredAt,
	}
}

// Courier returns the bound courier's ID, or nil while unclaimed.
func (d Delivery) Courier() *kernel.UUID {
	return d.courierID
}

// PickupAt returns when the courier claimed the order.
func (d Delivery) PickupAt() *time.Time {
	return d.pickupAt
}

// EstimatedDeliveryAt returns the projected delivery time, set when the
// courier departs.
func (d Delivery) EstimatedDeliveryAt() *time.Time {
	return d.estimatedDeliveryAt
}

// DeliveredAt returns the actual delivery time, set on completion.
func (d Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsBoundTo reports whether the given courier currently holds the claim.
func (d Delivery) IsBoundTo(courierID kernel.UUID) bool {
	return d.courierID != nil && d.courierID.IsEqual(courierID)
}
