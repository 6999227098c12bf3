package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its opening history records.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order. All columns are written, including ones
// going back to NULL (a cleared courier binding); new history records are
// appended and existing ones left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("History", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.appendHistory(ctx, dto.History); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateInStatus writes the order only if the stored row still carries the
// expected status. Returns false when another writer got there first.
func (r *GormOrderRepository) UpdateInStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Select("*").
		Omit("History", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := r.appendHistory(ctx, dto.History); err != nil {
		return false, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// Get retrieves an order with its full history, oldest record first.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// BindCourier performs the atomic check-and-set resolving the claim race:
// the row is updated only while no courier is bound, so of any set of
// concurrent claimers exactly one sees an affected row.
func (r *GormOrderRepository) BindCourier(
	ctx context.Context,
	orderID, courierID kernel.UUID,
	pickupAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND courier_id IS NULL", orderID.Bytes()).
		Updates(map[string]any{
			"courier_id": courierID.Bytes(),
			"pickup_at":  pickupAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewAlreadyAssignedError(orderID.String(), courierID.String())
	}

	return nil
}

// GetReadyUnassigned retrieves claimable orders, optionally for one restaurant.
func (r *GormOrderRepository) GetReadyUnassigned(
	ctx context.Context,
	restaurantID *kernel.UUID,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Where("status = ? AND courier_id IS NULL", order.Ready.String())
	if restaurantID != nil {
		query = query.Where("restaurant_id = ?", restaurantID.Bytes())
	}

	var dtos []OrderDTO
	if err := query.Order("updated_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStaleInStatus retrieves orders still in the given status older than the
// cutoff. PLACED ages from placedAt; everything else from createdAt.
func (r *GormOrderRepository) GetStaleInStatus(
	ctx context.Context,
	status order.Status,
	olderThan time.Time,
) ([]*order.Order, error) {
	ageColumn := "created_at"
	if status == order.Placed {
		ageColumn = "placed_at"
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Where("status = ? AND "+ageColumn+" < ?", status.String(), olderThan).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// appendHistory inserts history rows, silently skipping records that are
// already persisted. History is append-only, so an existing row never needs
// rewriting.
func (r *GormOrderRepository) appendHistory(ctx context.Context, rows []StatusChangeDTO) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
