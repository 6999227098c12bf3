package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrRejectStaleOrdersCommandIsNotConstructed = errors.New(
	"RejectStaleOrdersCommand must be created via NewRejectStaleOrdersCommand constructor",
)

// RejectStaleOrdersCommand triggers one auto-reject sweep over orders that
// stayed PLACED past the acceptance deadline.
type RejectStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRejectStaleOrdersCommand builds an auto-reject sweep command.
func NewRejectStaleOrdersCommand() RejectStaleOrdersCommand {
	return RejectStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RejectStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRejectStaleOrdersCommandIsNotConstructed)
}
