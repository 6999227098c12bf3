package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand finishes preparation: the ticket records its actual
// duration and the order becomes READY for pickup, atomically.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand validates and builds a ready command.
func NewMarkReadyCommand(orderID kernel.UUID) (MarkReadyCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkReadyCommand{}, err
	}

	return MarkReadyCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// OrderID returns the order whose preparation finished.
func (c MarkReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}
