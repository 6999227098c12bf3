package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
)

// TicketRepository defines the persistence contract for kitchen tickets.
type TicketRepository interface {
	// Add persists a new ticket. Fails if a ticket already exists for the
	// ticket's order: the binding is one-to-one.
	Add(ctx context.Context, aggregate *kitchen.Ticket) error

	// Update persists changes to an existing ticket.
	Update(ctx context.Context, aggregate *kitchen.Ticket) error

	// Get retrieves a ticket by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error)

	// GetByOrder retrieves the ticket bound to the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*kitchen.Ticket, error)
}
