package orderrepo

import (
	"context"
	"errors"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
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

// Add saves a new order to the database.
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

// Update persists the mutable part of an existing order under optimistic
// concurrency control: the write only lands when the stored version still
// matches the version the aggregate was loaded with, and it increments the
// version in the same statement. A stale write returns
// errs.VersionIsInvalidError; an unknown order returns
// errs.ObjectNotFoundError.
//
// Only the fields a lifecycle operation can change are written; the order's
// identity, contents and total are immutable after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":     dto.Status,
			"courier_id": dto.CourierID,
			"notes":      dto.Notes,
			"updated_at": dto.UpdatedAt,
			"version":    dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID())
		}
		return errs.NewVersionIsInvalidError("order")
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveByCourier retrieves the courier's orders in assigned or
// in_delivery status.
func (r *GormOrderRepository) GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "courier_id = ? AND status IN ?",
			courierID.Bytes(), []int{int(order.Assigned), int(order.InDelivery)}).
		Error; err != nil {
		return nil, err
	}

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
