package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// AssignCourierCommandHandler performs operator-driven dispatch, overwriting
// any existing claim. Unlike a courier claim this does not race: the operator
// decision is final and takes the plain update path.
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSink
	clock      Clock
}

// NewAssignCourierCommandHandler creates a handler for operator assignment.
func NewAssignCourierCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSink,
	clock Clock,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle force-binds the courier and fires the assigned notification after
// commit.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	if err = o.ForceBindCourier(cmd.CourierID(), cmd.Actor(), h.clock()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyCourierAssigned(ctx, o)
	return nil
}
