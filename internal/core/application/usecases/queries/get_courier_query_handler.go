package queries

import (
	"context"

	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierQueryHandler retrieves one roster entry with the same projection
// the roster list uses, so mutations can echo the fresh state back.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for single roster lookups.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle returns the roster entry, or errs.ObjectNotFoundError when no
// courier has the requested identifier.
func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (CourierReadModel, error) {
	if err := query.Validate(); err != nil {
		return CourierReadModel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.phone,
			c.active,
			COUNT(o.id) FILTER (WHERE o.status IN (?, ?)) AS active_orders,
			COUNT(o.id) AS orders_count,
			c.created_at
		FROM couriers c
		LEFT JOIN orders o ON o.courier_id = c.id
		WHERE c.id = ?
		GROUP BY c.id, c.name, c.phone, c.active, c.created_at
	`, int(order.Assigned), int(order.InDelivery), query.CourierID().Bytes()).Rows()
	if err != nil {
		return CourierReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CourierReadModel{}, err
		}
		return CourierReadModel{}, errs.NewObjectNotFoundError("courierId", query.CourierID())
	}

	var item CourierReadModel
	var id uuid.UUID
	if err = rows.Scan(
		&id,
		&item.Name,
		&item.Phone,
		&item.Active,
		&item.ActiveOrders,
		&item.OrdersCount,
		&item.CreatedAt,
	); err != nil {
		return CourierReadModel{}, err
	}

	item.ID = id.String()
	return item, nil
}
