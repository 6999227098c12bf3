// Package orderrepo implements order persistence over GORM, including the
// append-only status history and the conditional updates that arbitrate
// courier claims and enforcer sweeps.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate. Status is
// stored as its canonical string so conditional updates and read-side queries
// stay legible in SQL.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"uniqueIndex"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Status       string    `gorm:"index"`

	Subtotal    string `gorm:"type:numeric(12,2)"`
	DeliveryFee string `gorm:"type:numeric(12,2)"`
	Tax         string `gorm:"type:numeric(12,2)"`
	Discount    string `gorm:"type:numeric(12,2)"`

	CourierID           *uuid.UUID `gorm:"type:uuid;index"`
	PickupAt            *time.Time
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time

	ScheduledAt *time.Time
	CreatedAt   time.Time
	PlacedAt    *time.Time `gorm:"index"`
	UpdatedAt   time.Time

	History []StatusChangeDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusChangeDTO is one immutable row of the order's status history. Rows
// carry their own identity so re-persisting an aggregate can skip already
// written records instead of duplicating them.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	Actor     string
	Note      string
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "order_history".
func (StatusChangeDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Delivery().Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	domainHistory := aggregate.History()
	history := make([]StatusChangeDTO, 0, len(domainHistory))
	for _, change := range domainHistory {
		history = append(history, StatusChangeDTO{
			ID:        change.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			Status:    change.Status().String(),
			Actor:     change.Actor(),
			Note:      change.Note(),
			CreatedAt: change.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Number:              aggregate.Number(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		Status:              aggregate.Status().String(),
		Subtotal:            aggregate.Charges().Subtotal().String(),
		DeliveryFee:         aggregate.Charges().DeliveryFee().String(),
		Tax:                 aggregate.Charges().Tax().String(),
		Discount:            aggregate.Charges().Discount().String(),
		CourierID:           courierID,
		PickupAt:            aggregate.Delivery().PickupAt(),
		EstimatedDeliveryAt: aggregate.Delivery().EstimatedDeliveryAt(),
		DeliveredAt:         aggregate.Delivery().DeliveredAt(),
		ScheduledAt:         aggregate.ScheduledAt(),
		CreatedAt:           aggregate.CreatedAt(),
		PlacedAt:            aggregate.PlacedAt(),
		History:             history,
	}
}

// toDomain converts a database DTO back into an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	charges, err := chargesFromDTO(dto)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}
	delivery := order.RestoreDelivery(courierID, dto.PickupAt, dto.EstimatedDeliveryAt, dto.DeliveredAt)

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, row := range dto.History {
		changeID, rowErr := kernel.UUIDFromBytes(row.ID[:])
		if rowErr != nil {
			return nil, rowErr
		}
		changeStatus, rowErr := order.ParseStatus(row.Status)
		if rowErr != nil {
			return nil, rowErr
		}
		history = append(history, order.RestoreStatusChange(changeID, changeStatus, row.Actor, row.Note, row.CreatedAt))
	}

	return order.RestoreOrder(
		id, dto.Number, restaurantID, status,
		charges, delivery, history,
		dto.ScheduledAt, dto.CreatedAt, dto.PlacedAt,
	)
}

func chargesFromDTO(dto OrderDTO) (order.Charges, error) {
	subtotal, err := kernel.NewMoneyFromString(dto.Subtotal)
	if err != nil {
		return order.Charges{}, err
	}
	deliveryFee, err := kernel.NewMoneyFromString(dto.DeliveryFee)
	if err != nil {
		return order.Charges{}, err
	}
	tax, err := kernel.NewMoneyFromString(dto.Tax)
	if err != nil {
		return order.Charges{}, err
	}
	discount, err := kernel.NewMoneyFromString(dto.Discount)
	if err != nil {
		return order.Charges{}, err
	}

	return order.NewCharges(subtotal, deliveryFee, tax, discount)
}
