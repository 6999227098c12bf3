package commands

import (
	"context"
)

// ConfirmPaymentCommandHandler moves a PENDING order to PLACED after payment
// confirmation, taking it out of the payment-timeout population.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory, clock Clock) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle places the order. Fails with InvalidTransition if the order is not
// pending anymore (already placed, or cancelled by the payment timeout).
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	if err = o.Place(h.clock()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
