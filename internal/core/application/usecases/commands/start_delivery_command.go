package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand moves a claimed order out for delivery.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	courierID           kernel.UUID
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand validates and builds a delivery start command.
// estimatedDeliveryAt is optional; the handler applies a default when nil.
func NewStartDeliveryCommand(
	orderID, courierID kernel.UUID,
	estimatedDeliveryAt *time.Time,
) (StartDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return StartDeliveryCommand{}, err
	}

	return StartDeliveryCommand{
		orderID:             orderID,
		courierID:           courierID,
		estimatedDeliveryAt: estimatedDeliveryAt,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// OrderID returns the order going out for delivery.
func (c StartDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier starting the delivery.
func (c StartDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// EstimatedDeliveryAt returns the promised delivery time, nil for the default.
func (c StartDeliveryCommand) EstimatedDeliveryAt() *time.Time {
	return c.estimatedDeliveryAt
}
