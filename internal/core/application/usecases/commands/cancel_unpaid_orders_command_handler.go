package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CancelUnpaidOrdersCommandHandler is the payment-timeout half of the
// timeout enforcer: orders still PENDING past the payment threshold are
// cancelled with the SYSTEM actor and a fixed reason.
//
// Same execution model as the auto-reject sweep: per-candidate transactions
// with a status-guarded update, per-order failures logged and skipped.
type CancelUnpaidOrdersCommandHandler struct {
	uowFactory KitchenUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
	threshold  time.Duration
	logger     *slog.Logger
}

// NewCancelUnpaidOrdersCommandHandler creates a handler for payment-timeout sweeps.
func NewCancelUnpaidOrdersCommandHandler(
	uowFactory KitchenUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
	threshold time.Duration,
	logger *slog.Logger,
) CancelUnpaidOrdersCommandHandler {
	return CancelUnpaidOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		threshold:  threshold,
		logger:     logger,
	}
}

// Handle runs one sweep. Returns an error only when the candidate selection
// itself fails.
func (h CancelUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd CancelUnpaidOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock()
	candidates, err := h.selectCandidates(ctx, now.Add(-h.threshold))
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		cancelled, cancelErr := h.cancelOne(ctx, candidate.ID(), now)
		if cancelErr != nil {
			h.logger.Error("failed to cancel unpaid order",
				"order_id", candidate.ID().String(),
				"error", cancelErr,
			)
			continue
		}
		if cancelled != nil {
			h.notifier.NotifyOrderCancelled(ctx, cancelled)
		}
	}

	return nil
}

func (h CancelUnpaidOrdersCommandHandler) selectCandidates(
	ctx context.Context,
	olderThan time.Time,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.OrderRepository().GetStaleInStatus(ctx, order.Pending, olderThan)
	if err != nil {
		return nil, err
	}

	return candidates, uow.Commit(ctx)
}

// cancelOne transitions a single order in its own transaction. Returns nil
// without error when another writer already moved the order out of PENDING.
func (h CancelUnpaidOrdersCommandHandler) cancelOne(
	ctx context.Context,
	orderID kernel.UUID,
	now time.Time,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = o.Cancel(order.ActorSystem, order.ReasonPaymentTimeout, now); err != nil {
		return nil, err
	}

	applied, err := uow.OrderRepository().UpdateInStatus(ctx, o, order.Pending)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, nil
	}

	ticket, err := uow.TicketRepository().GetByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err = ticket.Cancel(); err != nil {
		return nil, err
	}
	if err = uow.TicketRepository().Update(ctx, ticket); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
