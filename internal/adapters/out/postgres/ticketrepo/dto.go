// Package ticketrepo implements kitchen ticket persistence over GORM.
package ticketrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"

	"github.com/google/uuid"
)

// TicketDTO is the database representation of a kitchen ticket. The order
// binding is unique: one ticket per order.
type TicketDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Status           string    `gorm:"index"`
	PreparerName     string
	Priority         int
	EstimatedMinutes int
	ActualMinutes    *int
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides GORM's default naming to use "tickets".
func (TicketDTO) TableName() string {
	return "tickets"
}

func fromDomain(aggregate *kitchen.Ticket) TicketDTO {
	return TicketDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		Status:           aggregate.Status().String(),
		PreparerName:     aggregate.PreparerName(),
		Priority:         aggregate.Priority(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		ActualMinutes:    aggregate.ActualMinutes(),
		StartedAt:        aggregate.StartedAt(),
		CompletedAt:      aggregate.CompletedAt(),
	}
}

func toDomain(dto TicketDTO) (*kitchen.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := kitchen.ParseTicketStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return kitchen.RestoreTicket(
		id, orderID, status,
		dto.PreparerName, dto.Priority, dto.EstimatedMinutes, dto.ActualMinutes,
		dto.StartedAt, dto.CompletedAt,
	)
}
