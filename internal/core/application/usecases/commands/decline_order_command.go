package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand releases a courier's claim so the order becomes
// listable again for other couriers.
type DeclineOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierID   kernel.UUID
	courierName string
	reason      string

	guard guard.ConstructorGuard
}

// NewDeclineOrderCommand validates and builds a decline command. The courier
// name and reason feed the decline notification; both may be empty.
func NewDeclineOrderCommand(orderID, courierID kernel.UUID, courierName, reason string) (DeclineOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return DeclineOrderCommand{}, err
	}

	return DeclineOrderCommand{
		orderID:     orderID,
		courierID:   courierID,
		courierName: courierName,
		reason:      reason,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

// OrderID returns the declined order's identifier.
func (c DeclineOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the declining courier's identifier.
func (c DeclineOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// CourierName returns the declining courier's display name.
func (c DeclineOrderCommand) CourierName() string {
	return c.courierName
}

// Reason returns the decline reason.
func (c DeclineOrderCommand) Reason() string {
	return c.reason
}
