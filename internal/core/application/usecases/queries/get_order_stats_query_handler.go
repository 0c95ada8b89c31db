package queries

import (
	"context"
	"database/sql"

	"ayoya/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates order counts and delivered revenue
// in a single grouped query.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle returns per-status counts over the query window. Statuses with no
// orders report zero.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStats, error) {
	if err := query.Validate(); err != nil {
		return OrderStats{}, err
	}

	where := ""
	args := make([]any, 0, 2)
	if query.From() != nil {
		where += " AND created_at >= ?"
		args = append(args, *query.From())
	}
	if query.To() != nil {
		where += " AND created_at < ?"
		args = append(args, *query.To())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			SUM(total_amount)
		FROM orders
		WHERE TRUE`+where+`
		GROUP BY status
	`, args...).Rows()
	if err != nil {
		return OrderStats{}, err
	}
	defer rows.Close()

	var stats OrderStats
	for rows.Next() {
		var status, count int
		var amount sql.NullInt64

		if err = rows.Scan(&status, &count, &amount); err != nil {
			return OrderStats{}, err
		}

		switch order.Status(status) {
		case order.Pending:
			stats.Pending = count
		case order.Confirmed:
			stats.Confirmed = count
		case order.Assigned:
			stats.Assigned = count
		case order.InDelivery:
			stats.InDelivery = count
		case order.Delivered:
			stats.Delivered = count
			stats.DeliveredRevenue = int(amount.Int64)
		case order.Cancelled:
			stats.Cancelled = count
		}
		stats.Total += count
	}
	if err = rows.Err(); err != nil {
		return OrderStats{}, err
	}

	return stats, nil
}
