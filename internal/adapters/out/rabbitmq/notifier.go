// Package rabbitmq publishes order lifecycle notifications to a RabbitMQ
// topic exchange. Publishing is best effort: a broker failure is logged and
// swallowed so that state changes never fail because a notification could
// not be delivered.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName   = "notifications"
	publishTimeout = 5 * time.Second
)

// notification is the wire format of one published event.
type notification struct {
	Event        string     `json:"event"`
	OrderID      string     `json:"order_id"`
	Number       string     `json:"number"`
	Status       string     `json:"status"`
	RestaurantID string     `json:"restaurant_id"`
	CourierID    *string    `json:"courier_id,omitempty"`
	CourierName  string     `json:"courier_name,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	OccurredAt   time.Time  `json:"occurred_at"`
	PickupAt     *time.Time `json:"pickup_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}

// Notifier implements ports.NotificationSink over an AMQP topic exchange.
// Routing keys follow the pattern "order.<event>", so consumers can bind to
// the events they care about ("order.ready", "order.#").
type Notifier struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *slog.Logger
}

var _ ports.NotificationSink = (*Notifier)(nil)

// NewNotifier dials the broker and declares the notifications exchange.
func NewNotifier(url string, logger *slog.Logger) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchangeName, err)
	}

	return &Notifier{
		conn:   conn,
		ch:     ch,
		logger: logger,
	}, nil
}

// Close releases the channel and connection.
func (n *Notifier) Close() error {
	if n.ch != nil && !n.ch.IsClosed() {
		if err := n.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if n.conn != nil && !n.conn.IsClosed() {
		if err := n.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}

func (n *Notifier) NotifyNewOrder(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.created", buildNotification("order.created", o))
}

func (n *Notifier) NotifyOrderAccepted(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.accepted", buildNotification("order.accepted", o))
}

func (n *Notifier) NotifyOrderPreparing(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.preparing", buildNotification("order.preparing", o))
}

func (n *Notifier) NotifyOrderReady(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.ready", buildNotification("order.ready", o))
}

func (n *Notifier) NotifyCourierAssigned(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.courier_assigned", buildNotification("order.courier_assigned", o))
}

func (n *Notifier) NotifyOrderOnDelivery(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.on_delivery", buildNotification("order.on_delivery", o))
}

func (n *Notifier) NotifyOrderDelivered(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.delivered", buildNotification("order.delivered", o))
}

func (n *Notifier) NotifyOrderCancelled(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.cancelled", buildNotification("order.cancelled", o))
}

func (n *Notifier) NotifyOrderRejected(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.rejected", buildNotification("order.rejected", o))
}

func (n *Notifier) NotifyCourierAccepted(ctx context.Context, o *order.Order) {
	n.publish(ctx, "order.courier_accepted", buildNotification("order.courier_accepted", o))
}

func (n *Notifier) NotifyCourierDeclined(ctx context.Context, o *order.Order, courierName, reason string) {
	msg := buildNotification("order.courier_declined", o)
	msg.CourierName = courierName
	msg.Reason = reason
	n.publish(ctx, "order.courier_declined", msg)
}

func (n *Notifier) publish(ctx context.Context, routingKey string, msg notification) {
	body, err := json.Marshal(msg)
	if err != nil {
		n.logger.ErrorContext(ctx, "marshal notification",
			"routing_key", routingKey, "order_id", msg.OrderID, "error", err)
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.ch.PublishWithContext(publishCtx,
		exchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		n.logger.ErrorContext(ctx, "publish notification",
			"routing_key", routingKey, "order_id", msg.OrderID, "error", err)
	}
}

func buildNotification(event string, o *order.Order) notification {
	msg := notification{
		Event:        event,
		OrderID:      o.ID().String(),
		Number:       o.Number(),
		Status:       o.Status().String(),
		RestaurantID: o.RestaurantID().String(),
		OccurredAt:   time.Now().UTC(),
		DeliveredAt:  o.Delivery().DeliveredAt(),
	}

	if courierID := o.Delivery().Courier(); courierID != nil {
		id := courierID.String()
		msg.CourierID = &id
		msg.PickupAt = o.Delivery().PickupAt()
	}

	return msg
}
