package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/core/ports"
)

// CompleteDeliveryCommandHandler finishes an order and pays the courier. The
// terminal order status and the wallet credit commit together or not at all:
// a failed payout rolls the completion back.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle completes the order, credits the delivery fee to the courier's
// wallet referencing the order number, and fires the delivered notification
// after commit. The courier's wallet is opened lazily on the first payout.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = o.CompleteDelivery(cmd.CourierID(), cmd.Note(), now); err != nil {
		return err
	}

	if _, err = creditWallet(
		ctx, uow.WalletRepository(),
		cmd.CourierID(), wallet.KindDeliveryFee, o.Charges().DeliveryFee(), o.Number(),
		now,
	); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderDelivered(ctx, o)
	return nil
}
