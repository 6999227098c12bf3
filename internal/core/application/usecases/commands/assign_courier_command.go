package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand is the operator override for manual dispatch: it binds
// the courier regardless of any prior claim. Terminal orders are refused.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	actor     string

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand validates and builds an operator assignment command.
func NewAssignCourierCommand(orderID, courierID kernel.UUID, actor string) (AssignCourierCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}
	if actor == "" {
		return AssignCourierCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier being assigned.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Actor returns the operator performing the assignment.
func (c AssignCourierCommand) Actor() string {
	return c.actor
}
