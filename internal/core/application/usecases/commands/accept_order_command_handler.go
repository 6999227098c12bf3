package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// AcceptOrderCommandHandler resolves the courier claim race. The aggregate
// checks the claim rule in memory, then the repository re-checks it with an
// atomic conditional update: of any set of concurrent claimers exactly one
// row update succeeds and the rest fail with AlreadyAssigned.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewAcceptOrderCommandHandler creates a handler for courier claims.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle binds the courier to the order if nobody claimed it first, stamps
// the pickup time, and fires the courier-accepted notification after commit.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = o.BindCourier(cmd.CourierID(), now); err != nil {
		return err
	}

	// The storage-level check-and-set is authoritative: the snapshot read
	// above may be stale under concurrency.
	if err = uow.OrderRepository().BindCourier(ctx, cmd.OrderID(), cmd.CourierID(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyCourierAccepted(ctx, o)
	return nil
}
