package queries

import (
	"context"
	"database/sql"
	"fmt"

	"ayoya/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of orders, newest first
// with the id as tie-breaker so pagination is stable.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	where, args := buildOrderFilter(query.Filter())

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders o"+where, args...).
		Scan(&total).Error; err != nil {
		return OrdersPage{}, err
	}

	pageArgs := append(args, query.PageSize(), query.Offset())
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
	`+where+`
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return OrdersPage{}, err
	}
	defer rows.Close()

	items := make([]OrderReadModel, 0, query.PageSize())
	for rows.Next() {
		item, scanErr := scanOrderReadModel(rows)
		if scanErr != nil {
			return OrdersPage{}, scanErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return OrdersPage{}, err
	}

	return OrdersPage{
		Items:    items,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}

// buildOrderFilter turns an OrderFilter into a WHERE clause with positional
// arguments. Conditions reference the "o" alias used by all order queries.
func buildOrderFilter(filter OrderFilter) (string, []any) {
	conditions := make([]string, 0, 5)
	args := make([]any, 0, 5)

	if filter.Status != "" {
		status, _ := order.StatusFromString(filter.Status)
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(status))
	}
	if filter.City != "" {
		conditions = append(conditions, "LOWER(o.address_city) = LOWER(?)")
		args = append(args, filter.City)
	}
	if filter.CreatedFrom != nil {
		conditions = append(conditions, "o.created_at >= ?")
		args = append(args, *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		conditions = append(conditions, "o.created_at < ?")
		args = append(args, *filter.CreatedTo)
	}
	if filter.Search != "" {
		conditions = append(conditions,
			"(o.id::text ILIKE ? OR o.number ILIKE ? OR o.customer_name ILIKE ? OR o.phone ILIKE ? OR o.address_city ILIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern, pattern)
	}

	if len(conditions) == 0 {
		return "", args
	}

	where := " WHERE " + conditions[0]
	for _, condition := range conditions[1:] {
		where += " AND " + condition
	}
	return where, args
}

// scanOrderReadModel reads one row of the order list projection. The row
// shape must match the SELECT column order above.
func scanOrderReadModel(rows *sql.Rows) (OrderReadModel, error) {
	var item OrderReadModel
	var id uuid.UUID
	var zone sql.NullString
	var status int
	var courierID uuid.NullUUID
	var courierName sql.NullString
	var notes sql.NullString

	if err := rows.Scan(
		&id,
		&item.Number,
		&item.CustomerName,
		&item.Phone,
		&item.DeliveryPhone,
		&item.Street,
		&item.City,
		&zone,
		&item.OrderType,
		&item.Quantity,
		&item.BottlesPerCarton,
		&item.PaymentMethod,
		&item.DeliveryMethod,
		&item.TotalAmount,
		&status,
		&courierID,
		&courierName,
		&notes,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.Version,
	); err != nil {
		return OrderReadModel{}, err
	}

	parsedStatus := order.Status(status)
	if err := parsedStatus.Validate(); err != nil {
		return OrderReadModel{}, fmt.Errorf("order %s: %w", id, err)
	}

	item.ID = id.String()
	item.Status = parsedStatus.String()
	item.Zone = zone.String
	item.Notes = notes.String
	if courierID.Valid {
		s := courierID.UUID.String()
		item.CourierID = &s
	}
	if courierName.Valid {
		item.CourierName = &courierName.String
	}

	return item, nil
}
