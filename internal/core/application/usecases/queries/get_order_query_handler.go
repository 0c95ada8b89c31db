package queries

import (
	"context"

	"ayoya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model, checking the
// cache before the database. Cache errors degrade to a database read so a
// Redis outage never takes the dashboard down.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	cache OrderCacheStore
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB, cache OrderCacheStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:    db,
		cache: cache,
	}
}

// Handle returns the order read model, or errs.ObjectNotFoundError when no
// order has the requested identifier. A database hit is written back to the
// cache best effort.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return OrderReadModel{}, err
	}

	if cached, err := h.cache.Get(ctx, query.OrderID()); err == nil && cached != nil {
		return *cached, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_name,
			o.phone,
			o.delivery_phone,
			o.address_street,
			o.address_city,
			o.address_zone,
			o.order_type,
			o.quantity,
			o.bottles_per_carton,
			o.payment_method,
			o.delivery_method,
			o.total_amount,
			o.status,
			o.courier_id,
			c.name,
			o.notes,
			o.created_at,
			o.updated_at,
			o.version
		FROM orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderReadModel{}, err
		}
		return OrderReadModel{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	item, err := scanOrderReadModel(rows)
	if err != nil {
		return OrderReadModel{}, err
	}

	_ = h.cache.Set(ctx, &item)

	return item, nil
}
