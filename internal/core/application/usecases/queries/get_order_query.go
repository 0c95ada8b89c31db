package queries

import (
	"context"
	"errors"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// OrderCacheStore is the read-through cache for single-order lookups.
// Get returns (nil, nil) on a cache miss; cache failures are treated as
// misses by the handler.
type OrderCacheStore interface {
	Get(ctx context.Context, orderID kernel.UUID) (*OrderReadModel, error)
	Set(ctx context.Context, model *OrderReadModel) error
}

// GetOrderQuery retrieves a single order by identifier.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
