package commands

import (
	"context"
)

// MarkPickedUpCommandHandler records the physical handover of the order to
// the courier on the kitchen ticket.
type MarkPickedUpCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewMarkPickedUpCommandHandler creates a handler for counter pickups.
func NewMarkPickedUpCommandHandler(uowFactory TicketUoWFactory) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the ticket picked up.
func (h MarkPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkPickedUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticket, err := uow.TicketRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ticket.MarkPickedUp(); err != nil {
		return err
	}

	if err = uow.TicketRepository().Update(ctx, ticket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
