package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand records the restaurant accepting a placed order.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand validates and builds a restaurant acceptance command.
// The actor identifies who at the restaurant accepted the order.
func NewConfirmOrderCommand(orderID kernel.UUID, actor string) (ConfirmOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}
	if actor == "" {
		return ConfirmOrderCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return ConfirmOrderCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the accepted order.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who accepted the order.
func (c ConfirmOrderCommand) Actor() string {
	return c.actor
}
