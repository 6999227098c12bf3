package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// MarkReadyCommandHandler completes preparation. The ticket computes its
// actual duration from the start timestamp, and the order transition to READY
// commits in the same unit of work, never independently.
type MarkReadyCommandHandler struct {
	uowFactory KitchenUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewMarkReadyCommandHandler creates a handler for preparation completion.
func NewMarkReadyCommandHandler(
	uowFactory KitchenUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle marks the ticket and the order ready, then fires the ready
// notification after commit. The preparer is recorded as the history actor.
func (h MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	ticket, err := uow.TicketRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ticket.MarkReady(now); err != nil {
		return err
	}
	if err = o.MarkReady(ticket.PreparerName(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err = uow.TicketRepository().Update(ctx, ticket); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderReady(ctx, o)
	return nil
}
