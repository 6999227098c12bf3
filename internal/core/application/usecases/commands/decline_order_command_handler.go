package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// DeclineOrderCommandHandler unbinds a courier from an order they previously
// claimed. Only the currently bound courier may decline.
type DeclineOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewDeclineOrderCommandHandler creates a handler for courier declines.
func NewDeclineOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle clears the courier binding and fires the decline notification with
// the courier's name and reason after commit.
func (h DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) error {
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

	if err = o.UnbindCourier(cmd.CourierID(), cmd.Reason(), h.clock()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyCourierDeclined(ctx, o, cmd.CourierName(), cmd.Reason())
	return nil
}
