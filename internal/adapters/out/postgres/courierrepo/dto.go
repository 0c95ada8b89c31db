// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"time"

	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. Timestamps come from the domain, so GORM's automatic time
// tracking is disabled.
type CourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Phone     string    `gorm:"not null"`
	Active    bool      `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Active:    aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to a courier aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, dto.Active, dto.CreatedAt, dto.UpdatedAt)
}
