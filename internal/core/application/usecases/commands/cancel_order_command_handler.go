package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and its kitchen ticket together.
// Cancellation is only possible from statuses the transition table allows;
// orders already out for delivery cannot be cancelled.
type CancelOrderCommandHandler struct {
	uowFactory KitchenUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory KitchenUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle cancels the order, closes its ticket, and fires the cancelled
// notification after a successful commit.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(cmd.Actor(), cmd.Reason(), h.clock()); err != nil {
		return err
	}

	ticket, err := uow.TicketRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = ticket.Cancel(); err != nil {
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

	h.notifier.NotifyOrderCancelled(ctx, o)
	return nil
}
