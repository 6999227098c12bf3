package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdatePriorityCommandIsNotConstructed = errors.New(
	"UpdatePriorityCommand must be created via NewUpdatePriorityCommand constructor",
)

// UpdatePriorityCommand changes a ticket's kitchen queue priority.
type UpdatePriorityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	priority int

	guard guard.ConstructorGuard
}

// NewUpdatePriorityCommand validates and builds a priority update command.
// Higher priorities jump the kitchen queue.
func NewUpdatePriorityCommand(orderID kernel.UUID, priority int) (UpdatePriorityCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdatePriorityCommand{}, err
	}

	return UpdatePriorityCommand{
		orderID:  orderID,
		priority: priority,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePriorityCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePriorityCommandIsNotConstructed)
}

// OrderID returns the order whose ticket priority changes.
func (c UpdatePriorityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Priority returns the new queue priority.
func (c UpdatePriorityCommand) Priority() int {
	return c.priority
}
