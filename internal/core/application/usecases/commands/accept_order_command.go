package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a courier's claim on a ready order. Concurrent claims
// on the same order race; exactly one wins, the rest fail with AlreadyAssigned.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand validates and builds a courier claim command.
func NewAcceptOrderCommand(orderID, courierID kernel.UUID) (AcceptOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the claimed order's identifier.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the claiming courier's identifier.
func (c AcceptOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}
