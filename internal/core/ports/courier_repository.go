// Package ports defines repository interfaces for the order and courier
// domains. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no courier exists with the ID.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// Delete removes a courier from the roster. Callers must first check
	// that the courier has no active orders.
	Delete(ctx context.Context, id kernel.UUID) error
}
