package commands

import (
	"context"
)

// UpdatePriorityCommandHandler updates the kitchen queue priority of a
// ticket. Pure attribute change, no state-machine interaction.
type UpdatePriorityCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewUpdatePriorityCommandHandler creates a handler for priority updates.
func NewUpdatePriorityCommandHandler(uowFactory TicketUoWFactory) UpdatePriorityCommandHandler {
	return UpdatePriorityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the new priority on the ticket.
func (h UpdatePriorityCommandHandler) Handle(ctx context.Context, cmd UpdatePriorityCommand) error {
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

	ticket.SetPriority(cmd.Priority())

	if err = uow.TicketRepository().Update(ctx, ticket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
