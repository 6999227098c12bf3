package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents the intake of a new customer order with its
// monetary breakdown. When awaitPayment is set the order stays PENDING until
// payment confirmation; otherwise it is placed immediately.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	charges      order.Charges
	scheduledAt  *time.Time
	awaitPayment bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates and builds an order intake command.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	charges order.Charges,
	scheduledAt *time.Time,
	awaitPayment bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.charges = charges
	cmd.scheduledAt = scheduledAt
	cmd.awaitPayment = awaitPayment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order is placed against.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Charges returns the monetary breakdown.
func (c CreateOrderCommand) Charges() order.Charges {
	return c.charges
}

// ScheduledAt returns the optional requested fulfillment time.
func (c CreateOrderCommand) ScheduledAt() *time.Time {
	return c.scheduledAt
}

// AwaitPayment reports whether the order must stay pending until payment.
func (c CreateOrderCommand) AwaitPayment() bool {
	return c.awaitPayment
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}
