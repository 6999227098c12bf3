package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// StartPreparationCommandHandler moves the kitchen ticket and its order into
// preparation atomically: the ticket is never PREPARING while the order is
// not, and vice versa.
type StartPreparationCommandHandler struct {
	uowFactory KitchenUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewStartPreparationCommandHandler creates a handler for preparation start.
func NewStartPreparationCommandHandler(
	uowFactory KitchenUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) StartPreparationCommandHandler {
	return StartPreparationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle starts preparation on both aggregates and fires the preparing
// notification after commit. The order must be ACCEPTED and the ticket PENDING.
func (h StartPreparationCommandHandler) Handle(ctx context.Context, cmd StartPreparationCommand) error {
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

	if err = o.StartPreparing(cmd.PreparerName(), now); err != nil {
		return err
	}
	if err = ticket.Start(cmd.PreparerName(), now); err != nil {
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

	h.notifier.NotifyOrderPreparing(ctx, o)
	return nil
}
