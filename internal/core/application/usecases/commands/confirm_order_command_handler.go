package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// ConfirmOrderCommandHandler performs the PLACED to ACCEPTED transition when
// the restaurant takes an order, beating the auto-reject deadline.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewConfirmOrderCommandHandler creates a handler for restaurant acceptance.
func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle accepts the order and fires the accepted notification after commit.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if err = o.Accept(cmd.Actor(), h.clock()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderAccepted(ctx, o)
	return nil
}
