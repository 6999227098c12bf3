package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPreparationCommandIsNotConstructed = errors.New(
	"StartPreparationCommand must be created via NewStartPreparationCommand constructor",
)

// StartPreparationCommand records the kitchen beginning work on an order:
// the ticket moves to PREPARING and the order follows in the same transaction.
type StartPreparationCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	preparerName string

	guard guard.ConstructorGuard
}

// NewStartPreparationCommand validates and builds a preparation start command.
func NewStartPreparationCommand(orderID kernel.UUID, preparerName string) (StartPreparationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartPreparationCommand{}, err
	}
	if preparerName == "" {
		return StartPreparationCommand{}, errs.NewValueIsRequiredError("preparerName")
	}

	return StartPreparationCommand{
		orderID:      orderID,
		preparerName: preparerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPreparationCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparationCommandIsNotConstructed)
}

// OrderID returns the order whose preparation starts.
func (c StartPreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PreparerName returns who is preparing the order.
func (c StartPreparationCommand) PreparerName() string {
	return c.preparerName
}
