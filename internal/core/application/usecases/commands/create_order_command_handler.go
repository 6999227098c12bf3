package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler handles order intake: it creates the order, opens
// its one-to-one kitchen ticket in the same transaction, and places the order
// unless it must await payment.
type CreateOrderCommandHandler struct {
	uowFactory KitchenUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(
	uowFactory KitchenUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle creates the order (PENDING, then PLACED unless awaiting payment)
// together with its preparation ticket, and fires the new-order notification
// after a successful commit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		generateOrderNumber(cmd.OrderID(), now),
		cmd.RestaurantID(),
		cmd.Charges(),
		cmd.ScheduledAt(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if !cmd.AwaitPayment() {
		if err = newOrder.Place(now); err != nil {
			return nil, err
		}
	}

	ticket, err := kitchen.NewTicket(kernel.NewUUID(), newOrder.ID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}
	if err = uow.TicketRepository().Add(ctx, ticket); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyNewOrder(ctx, newOrder)
	return newOrder, nil
}

// generateOrderNumber derives the human-readable order number from the
// intake date and the order identifier's leading bytes.
func generateOrderNumber(orderID kernel.UUID, now time.Time) string {
	raw := orderID.Bytes()
	return fmt.Sprintf("ORD-%s-%X", now.Format("20060102"), raw[:4])
}
