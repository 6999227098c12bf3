package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand records the courier collecting the prepared order at
// the kitchen counter. This only moves the ticket; the order itself leaves
// READY through the delivery start.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand validates and builds a pickup command.
func NewMarkPickedUpCommand(orderID kernel.UUID) (MarkPickedUpCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return MarkPickedUpCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// OrderID returns the order whose ticket is picked up.
func (c MarkPickedUpCommand) OrderID() kernel.UUID {
	return c.orderID
}
