package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// DefaultDeliveryEstimate is the promised delivery window applied when the
// courier does not provide one.
const DefaultDeliveryEstimate = 30 * time.Minute

// StartDeliveryCommandHandler performs the READY to PICKED_UP transition.
// Only the bound courier may start the delivery.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewStartDeliveryCommandHandler creates a handler for delivery starts.
func NewStartDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle moves the order out for delivery, stamps the estimated delivery
// time, and fires the on-delivery notification after commit.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock()
	eta := now.Add(DefaultDeliveryEstimate)
	if cmd.EstimatedDeliveryAt() != nil {
		eta = *cmd.EstimatedDeliveryAt()
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

	if err = o.StartDelivery(cmd.CourierID(), eta, now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderOnDelivery(ctx, o)
	return nil
}
