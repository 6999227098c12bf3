package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand finishes a delivery: the order reaches COMPLETED
// and the courier's wallet is credited the delivery fee in one transaction.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand validates and builds a completion command.
// The note is optional and recorded in the order history.
func NewCompleteDeliveryCommand(orderID, courierID kernel.UUID, note string) (CompleteDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		orderID:   orderID,
		courierID: courierID,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the delivered order's identifier.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the delivering courier's identifier.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Note returns the optional completion note.
func (c CompleteDeliveryCommand) Note() string {
	return c.note
}
