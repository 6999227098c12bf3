package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNumberIsRequired is returned when the human-readable order
	// number is empty.
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// ActorSystem is the history actor recorded for transitions forced by the
// timeout enforcer rather than a human or courier.
const ActorSystem = "SYSTEM"

// Fixed reason strings for system-driven terminal states. Downstream
// consumers rely on these to distinguish timeout-driven rejections and
// cancellations from human-driven ones.
const (
	ReasonNotAcceptedInTime = "Order was not accepted in time"
	ReasonPaymentTimeout    = "Payment was not completed in time"
)

// Order is the aggregate root for a customer's purchase and its fulfillment
// state. Its status only ever changes through ValidateTransition on the
// transition table, and every change appends exactly one history record.
//
// Invariants:
//   - status changes only via validated transitions
//   - at most one courier is bound at a time; binding is cleared only through
//     the explicit decline path or overwritten by an operator override
//   - history is append-only
//   - monetary breakdown is fixed-point and internally consistent
type Order struct {
	id           kernel.UUID
	number       string
	restaurantID kernel.UUID
	status       Status
	charges      Charges
	delivery     Delivery
	history      []StatusChange
	scheduledAt  *time.Time
	createdAt    time.Time
	placedAt     *time.Time

	isConstructed bool
}

// NewOrder creates an order in PENDING status with an opening history record.
// The intake layer decides whether to Place it immediately or leave it
// pending until payment confirmation.
func NewOrder(
	id kernel.UUID,
	number string,
	restaurantID kernel.UUID,
	charges Charges,
	scheduledAt *time.Time,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, ErrOrderNumberIsRequired
	}
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		number:        number,
		restaurantID:  restaurantID,
		status:        Pending,
		charges:       charges,
		scheduledAt:   scheduledAt,
		createdAt:     now,
		isConstructed: true,
	}
	o.history = append(o.history, newStatusChange(Pending, "CUSTOMER", "order created", now))

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// No transition validation is applied; the stored state is trusted.
func RestoreOrder(
	id kernel.UUID,
	number string,
	restaurantID kernel.UUID,
	status Status,
	charges Charges,
	delivery Delivery,
	history []StatusChange,
	scheduledAt *time.Time,
	createdAt time.Time,
	placedAt *time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		number:        number,
		restaurantID:  restaurantID,
		status:        status,
		charges:       charges,
		delivery:      delivery,
		history:       history,
		scheduledAt:   scheduledAt,
		createdAt:     createdAt,
		placedAt:      placedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// RestaurantID returns the restaurant the order was placed against.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Charges returns the monetary breakdown.
func (o *Order) Charges() Charges {
	return o.charges
}

// Delivery returns the courier-binding and timing record.
func (o *Order) Delivery() Delivery {
	return o.delivery
}

// History returns a copy of the append-only status history.
func (o *Order) History() []StatusChange {
	out := make([]StatusChange, len(o.history))
	copy(out, o.history)
	return out
}

// ScheduledAt returns the optional requested fulfillment time.
func (o *Order) ScheduledAt() *time.Time {
	return o.scheduledAt
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PlacedAt returns when the order was placed, nil while still pending.
func (o *Order) PlacedAt() *time.Time {
	return o.placedAt
}

// TransitionTo performs a table-validated status change and appends exactly
// one history record. All named lifecycle methods go through here.
func (o *Order) TransitionTo(to Status, actor, note string, now time.Time) error {
	if err := o.status.ValidateTransition(to); err != nil {
		return err
	}

	o.status = to
	o.history = append(o.history, newStatusChange(to, actor, note, now))
	return nil
}

// Place submits a pending order to the restaurant.
func (o *Order) Place(now time.Time) error {
	if err := o.TransitionTo(Placed, "CUSTOMER", "order placed", now); err != nil {
		return err
	}
	o.placedAt = &now
	return nil
}

// Accept records the restaurant taking the order.
func (o *Order) Accept(actor string, now time.Time) error {
	return o.TransitionTo(Accepted, actor, "order accepted", now)
}

// Reject records the restaurant (or the system, on timeout) refusing the order.
func (o *Order) Reject(actor, reason string, now time.Time) error {
	return o.TransitionTo(Rejected, actor, reason, now)
}

// Cancel terminates the order before completion.
func (o *Order) Cancel(actor, reason string, now time.Time) error {
	return o.TransitionTo(Cancelled, actor, reason, now)
}

// StartPreparing records the kitchen beginning work on the order.
func (o *Order) StartPreparing(actor string, now time.Time) error {
	return o.TransitionTo(Preparing, actor, "preparation started", now)
}

// MarkReady records preparation finishing; the order now awaits pickup.
func (o *Order) MarkReady(actor string, now time.Time) error {
	return o.TransitionTo(Ready, actor, "order ready for pickup", now)
}

// BindCourier claims the order for a courier. The order must be READY and
// unclaimed; a second claim fails with AlreadyAssigned. The canonical status
// stays READY (the deprecated COURIER_ASSIGNED status maps onto it), so the
// claim is recorded through the delivery record and a history entry.
//
// Note: this in-memory check alone does not resolve concurrent claims; the
// repository performs the equivalent check-and-set atomically at the storage
// layer. Both must agree on the rule.
func (o *Order) BindCourier(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status != Ready {
		return errs.NewInvalidStateError("order", o.status.String(), "only READY orders can be claimed")
	}
	if o.delivery.courierID != nil {
		return errs.NewAlreadyAssignedError(o.id.String(), courierID.String())
	}

	o.delivery.courierID = &courierID
	o.delivery.pickupAt = &now
	o.history = append(o.history, newStatusChange(o.status, courierID.String(), "courier claimed order", now))
	return nil
}

// ForceBindCourier is the operator override for manual dispatch: it binds the
// courier regardless of any prior claim, recording the override in history.
func (o *Order) ForceBindCourier(courierID kernel.UUID, actor string, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String(), "terminal orders cannot be assigned")
	}

	o.delivery.courierID = &courierID
	o.delivery.pickupAt = &now
	o.history = append(o.history, newStatusChange(o.status, actor, "courier assigned by operator", now))
	return nil
}

// UnbindCourier releases the claim so the order becomes listable again.
// Only the currently bound courier may decline.
func (o *Order) UnbindCourier(courierID kernel.UUID, reason string, now time.Time) error {
	if !o.delivery.IsBoundTo(courierID) {
		return errs.NewInvalidStateError("order", o.status.String(),
			"courier "+courierID.String()+" is not bound to this order")
	}

	note := "courier declined order"
	if reason != "" {
		note = "courier declined order: " + reason
	}

	o.delivery.courierID = nil
	o.delivery.pickupAt = nil
	o.history = append(o.history, newStatusChange(o.status, courierID.String(), note, now))
	return nil
}

// StartDelivery moves the order out for delivery. Only the bound courier may
// start it.
func (o *Order) StartDelivery(courierID kernel.UUID, estimatedDeliveryAt time.Time, now time.Time) error {
	if !o.delivery.IsBoundTo(courierID) {
		return errs.NewInvalidStateError("order", o.status.String(),
			"courier "+courierID.String()+" is not bound to this order")
	}
	if err := o.TransitionTo(PickedUp, courierID.String(), "out for delivery", now); err != nil {
		return err
	}

	o.delivery.estimatedDeliveryAt = &estimatedDeliveryAt
	return nil
}

// CompleteDelivery finishes the order: terminal COMPLETED status plus the
// actual delivery timestamp. Only the bound courier may complete it.
func (o *Order) CompleteDelivery(courierID kernel.UUID, note string, now time.Time) error {
	if !o.delivery.IsBoundTo(courierID) {
		return errs.NewInvalidStateError("order", o.status.String(),
			"courier "+courierID.String()+" is not bound to this order")
	}

	if note == "" {
		note = "order delivered"
	}
	if err := o.TransitionTo(Completed, courierID.String(), note, now); err != nil {
		return err
	}

	o.delivery.deliveredAt = &now
	return nil
}
