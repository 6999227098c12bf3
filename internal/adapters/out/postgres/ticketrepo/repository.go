package ticketrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTicketRepository implements TicketRepository using GORM.
type GormTicketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTicketRepository creates a new GORM ticket repository.
func NewGormTicketRepository(db *gorm.DB, tracker aggregateTracker) *GormTicketRepository {
	return &GormTicketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ticket. The unique order binding makes a second ticket for
// the same order fail at the constraint.
func (r *GormTicketRepository) Add(ctx context.Context, aggregate *kitchen.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing ticket, writing all columns.
func (r *GormTicketRepository) Update(ctx context.Context, aggregate *kitchen.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TicketDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ticket", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ticket by its identifier.
func (r *GormTicketRepository) Get(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ticket", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the ticket bound to the given order.
func (r *GormTicketRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*kitchen.Ticket, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ticket for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
