package kitchen

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrTicketIsNotConstructed is returned when a Ticket instance was not
// created through NewTicket or RestoreTicket.
var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")

// DefaultEstimateMinutes is the preparation estimate assigned to a ticket
// when it is opened, before the kitchen refines it.
const DefaultEstimateMinutes = 30

// Ticket tracks the kitchen preparation of exactly one order. The ticket's
// status moves in lockstep with the order: the application layer transitions
// both inside one atomic unit of work.
type Ticket struct {
	id               kernel.UUID
	orderID          kernel.UUID
	status           TicketStatus
	preparerName     string
	priority         int
	estimatedMinutes int
	actualMinutes    *int
	startedAt        *time.Time
	completedAt      *time.Time

	isConstructed bool
}

// NewTicket opens a preparation ticket in PENDING with the default estimate,
// bound one-to-one to the given order.
func NewTicket(id kernel.UUID, orderID kernel.UUID) (*Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &Ticket{
		id:               id,
		orderID:          orderID,
		status:           TicketPending,
		estimatedMinutes: DefaultEstimateMinutes,
		isConstructed:    true,
	}, nil
}

// RestoreTicket reconstructs a ticket from persistence without precondition checks.
func RestoreTicket(
	id kernel.UUID,
	orderID kernel.UUID,
	status TicketStatus,
	preparerName string,
	priority int,
	estimatedMinutes int,
	actualMinutes *int,
	startedAt *time.Time,
	completedAt *time.Time,
) (*Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Ticket{
		id:               id,
		orderID:          orderID,
		status:           status,
		preparerName:     preparerName,
		priority:         priority,
		estimatedMinutes: estimatedMinutes,
		actualMinutes:    actualMinutes,
		startedAt:        startedAt,
		completedAt:      completedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Ticket was created through a constructor.
func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}
	return nil
}

// ID returns the ticket's unique identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// OrderID returns the bound order's identifier.
func (t *Ticket) OrderID() kernel.UUID {
	return t.orderID
}

// Status returns the preparation sub-state.
func (t *Ticket) Status() TicketStatus {
	return t.status
}

// PreparerName returns who is preparing the order, empty until Start.
func (t *Ticket) PreparerName() string {
	return t.preparerName
}

// Priority returns the kitchen queue priority; higher values jump the queue.
func (t *Ticket) Priority() int {
	return t.priority
}

// EstimatedMinutes returns the preparation estimate.
func (t *Ticket) EstimatedMinutes() int {
	return t.estimatedMinutes
}

// ActualMinutes returns the measured preparation duration, nil until READY.
func (t *Ticket) ActualMinutes() *int {
	return t.actualMinutes
}

// StartedAt returns when preparation began.
func (t *Ticket) StartedAt() *time.Time {
	return t.startedAt
}

// CompletedAt returns when preparation finished.
func (t *Ticket) CompletedAt() *time.Time {
	return t.completedAt
}

// Start records a preparer beginning work. The ticket must be PENDING.
func (t *Ticket) Start(preparerName string, now time.Time) error {
	if preparerName == "" {
		return errs.NewValueIsRequiredError("preparerName")
	}
	if t.status != TicketPending {
		return errs.NewInvalidStateError("ticket", t.status.String(), "preparation can only start on a pending ticket")
	}

	t.status = TicketPreparing
	t.preparerName = preparerName
	t.startedAt = &now
	return nil
}

// MarkReady finishes preparation and computes the actual duration as whole
// minutes elapsed since Start, truncated. The ticket must be PREPARING.
func (t *Ticket) MarkReady(now time.Time) error {
	if t.status != TicketPreparing {
		return errs.NewInvalidStateError("ticket", t.status.String(), "only a ticket in preparation can be marked ready")
	}

	actual := int(now.Sub(*t.startedAt).Minutes())
	t.status = TicketReady
	t.actualMinutes = &actual
	t.completedAt = &now
	return nil
}

// MarkPickedUp records the courier collecting the order. The reference
// behavior had no precondition here; the minimal guard kept is refusing
// tickets already picked up or cancelled.
func (t *Ticket) MarkPickedUp() error {
	if t.status == TicketPickedUp || t.status == TicketCancelled {
		return errs.NewInvalidStateError("ticket", t.status.String(), "ticket can no longer be picked up")
	}

	t.status = TicketPickedUp
	return nil
}

// Cancel closes the ticket when the bound order terminates early.
func (t *Ticket) Cancel() error {
	if t.status == TicketPickedUp || t.status == TicketCancelled {
		return errs.NewInvalidStateError("ticket", t.status.String(), "ticket can no longer be cancelled")
	}

	t.status = TicketCancelled
	return nil
}

// SetPriority updates the kitchen queue priority. Pure attribute update with
// no state-machine interaction.
func (t *Ticket) SetPriority(priority int) {
	t.priority = priority
}
