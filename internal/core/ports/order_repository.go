package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including the atomic courier check-and-set that resolves the claim race.
type OrderRepository interface {
	// Add persists a new order aggregate, including its opening history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. New history
	// records are appended; existing ones are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists changes only if the stored row is still in
	// expectedStatus. Returns false when zero rows were affected, meaning
	// another writer got there first and the aggregate is already handled.
	// Used by the timeout enforcer so overlapping runs never double-process
	// an order.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) (bool, error)

	// Get retrieves an order aggregate with its history by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// BindCourier atomically binds a courier to an order that has no courier
	// yet: a conditional update guarded by "courier is currently unbound".
	// Exactly one of any set of concurrent callers succeeds; the rest get
	// AlreadyAssigned.
	BindCourier(ctx context.Context, orderID, courierID kernel.UUID, pickupAt time.Time) error

	// GetReadyUnassigned retrieves orders in READY status with no bound
	// courier, optionally filtered by restaurant.
	GetReadyUnassigned(ctx context.Context, restaurantID *kernel.UUID) ([]*order.Order, error)

	// GetStaleInStatus retrieves orders still in the given status whose
	// lifecycle timestamp (placedAt for PLACED, createdAt otherwise) is
	// older than the cutoff. The selection predicate doubles as the
	// enforcer's deduplication mechanism.
	GetStaleInStatus(ctx context.Context, status order.Status, olderThan time.Time) ([]*order.Order, error)
}
