package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// NotificationSink receives best-effort fan-out after every state change.
// Implementations must never fail the caller: delivery failures are logged
// and swallowed at the adapter boundary, and are never retried by the core.
// None of these methods participate in the transaction that triggered them.
type NotificationSink interface {
	NotifyNewOrder(ctx context.Context, o *order.Order)
	NotifyOrderAccepted(ctx context.Context, o *order.Order)
	NotifyOrderPreparing(ctx context.Context, o *order.Order)
	NotifyOrderReady(ctx context.Context, o *order.Order)
	NotifyCourierAssigned(ctx context.Context, o *order.Order)
	NotifyOrderOnDelivery(ctx context.Context, o *order.Order)
	NotifyOrderDelivered(ctx context.Context, o *order.Order)
	NotifyOrderCancelled(ctx context.Context, o *order.Order)
	NotifyOrderRejected(ctx context.Context, o *order.Order)
	NotifyCourierAccepted(ctx context.Context, o *order.Order)
	NotifyCourierDeclined(ctx context.Context, o *order.Order, courierName, reason string)
}
