package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// RejectStaleOrdersCommandHandler is the auto-reject half of the timeout
// enforcer: orders still PLACED past the threshold are rejected with the
// SYSTEM actor and a fixed reason, and their kitchen tickets closed.
//
// Each candidate is processed in its own transaction with a status-guarded
// update, so overlapping sweeps (or a sweep racing a human acceptance) never
// double-process an order. Per-order failures are logged and skipped; one bad
// order never blocks the rest of the batch.
type RejectStaleOrdersCommandHandler struct {
	uowFactory KitchenUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
	threshold  time.Duration
	logger     *slog.Logger
}

// NewRejectStaleOrdersCommandHandler creates a handler for auto-reject sweeps.
func NewRejectStaleOrdersCommandHandler(
	uowFactory KitchenUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
	threshold time.Duration,
	logger *slog.Logger,
) RejectStaleOrdersCommandHandler {
	return RejectStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		threshold:  threshold,
		logger:     logger,
	}
}

// Handle runs one sweep. Returns an error only when the candidate selection
// itself fails; per-order failures are logged and swallowed.
func (h RejectStaleOrdersCommandHandler) Handle(ctx context.Context, cmd RejectStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock()
	candidates, err := h.selectCandidates(ctx, now.Add(-h.threshold))
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		rejected, rejectErr := h.rejectOne(ctx, candidate.ID(), now)
		if rejectErr != nil {
			h.logger.Error("failed to reject stale order",
				"order_id", candidate.ID().String(),
				"error", rejectErr,
			)
			continue
		}
		if rejected != nil {
			h.notifier.NotifyOrderRejected(ctx, rejected)
		}
	}

	return nil
}

func (h RejectStaleOrdersCommandHandler) selectCandidates(
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

	candidates, err := uow.OrderRepository().GetStaleInStatus(ctx, order.Placed, olderThan)
	if err != nil {
		return nil, err
	}

	return candidates, uow.Commit(ctx)
}

// rejectOne transitions a single order in its own transaction. Returns nil
// without error when another writer already moved the order out of PLACED.
func (h RejectStaleOrdersCommandHandler) rejectOne(
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

	if err = o.Reject(order.ActorSystem, order.ReasonNotAcceptedInTime, now); err != nil {
		return nil, err
	}

	applied, err := uow.OrderRepository().UpdateInStatus(ctx, o, order.Placed)
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
