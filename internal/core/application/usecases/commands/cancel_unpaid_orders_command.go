package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrCancelUnpaidOrdersCommandIsNotConstructed = errors.New(
	"CancelUnpaidOrdersCommand must be created via NewCancelUnpaidOrdersCommand constructor",
)

// CancelUnpaidOrdersCommand triggers one payment-timeout sweep over orders
// that stayed PENDING past the payment deadline.
type CancelUnpaidOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelUnpaidOrdersCommand builds a payment-timeout sweep command.
func NewCancelUnpaidOrdersCommand() CancelUnpaidOrdersCommand {
	return CancelUnpaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CancelUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelUnpaidOrdersCommandIsNotConstructed)
}
