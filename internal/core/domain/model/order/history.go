package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusChange is one record of the order's append-only status history.
// Every validated transition appends exactly one record; records are never
// mutated or removed, so terminal orders keep a complete audit trail.
type StatusChange struct {
	id        kernel.UUID
	status    Status
	actor     string
	note      string
	createdAt time.Time
}

// RestoreStatusChange reconstructs a history record from persistence.
func RestoreStatusChange(id kernel.UUID, status Status, actor, note string, createdAt time.Time) StatusChange {
	return StatusChange{
		id:        id,
		status:    status,
		actor:     actor,
		note:      note,
		createdAt: createdAt,
	}
}

func newStatusChange(status Status, actor, note string, at time.Time) StatusChange {
	return StatusChange{
		id:        kernel.NewUUID(),
		status:    status,
		actor:     actor,
		note:      note,
		createdAt: at,
	}
}

// ID returns the record's unique identifier.
func (c StatusChange) ID() kernel.UUID {
	return c.id
}

// Status returns the status the order entered (or re-confirmed) at this point.
func (c StatusChange) Status() Status {
	return c.status
}

// Actor returns who drove the change: a customer, an operator, a courier
// identifier, or "SYSTEM" for timeout-driven transitions.
func (c StatusChange) Actor() string {
	return c.actor
}

// Note returns the free-form note attached to the change.
func (c StatusChange) Note() string {
	return c.note
}

// CreatedAt returns when the change was recorded.
func (c StatusChange) CreatedAt() time.Time {
	return c.createdAt
}
