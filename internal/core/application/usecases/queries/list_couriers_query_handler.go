package queries

import (
	"context"

	"ayoya/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCouriersQueryHandler retrieves the roster with the in-flight order
// count per person, so the dispatch screen shows who is loaded and who is
// free.
type ListCouriersQueryHandler struct {
	db *gorm.DB
}

// NewListCouriersQueryHandler creates a handler for roster queries.
func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

// Handle returns the roster sorted by name. An order counts as in flight
// while it is assigned or in delivery; the lifetime tally counts every order
// the person was ever assigned, whatever its status ended up as.
func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	args := []any{int(order.Assigned), int(order.InDelivery)}
	if query.ActiveOnly() {
		where = "WHERE c.active"
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
		`+where+`
		GROUP BY c.id, c.name, c.phone, c.active, c.created_at
		ORDER BY c.name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]CourierReadModel, 0)
	for rows.Next() {
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
			return nil, err
		}

		item.ID = id.String()
		couriers = append(couriers, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
