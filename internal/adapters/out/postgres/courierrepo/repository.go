package courierrepo

import (
	"context"
	"errors"

	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Update saves changes to an existing courier. A map is used instead of the
// struct so a false Active flag is written rather than skipped as a zero
// value.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":       dto.Name,
			"phone":      dto.Phone,
			"active":     dto.Active,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courierId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courierId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a courier row. Returns errs.ObjectNotFoundError when the
// courier does not exist.
func (r *GormCourierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CourierDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courierId", id)
	}

	return nil
}
