package ports

import (
	"context"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using
	// optimistic concurrency: the write succeeds only when the stored
	// version still matches the version the aggregate was loaded with.
	// Returns errs.VersionIsInvalidError on a stale write.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order exists with the ID.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActiveByCourier retrieves the courier's orders in assigned or
	// in_delivery status. Used to block roster removal while deliveries
	// are in flight.
	GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
