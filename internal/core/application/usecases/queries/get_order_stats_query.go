package queries

import (
	"errors"
	"time"

	"ayoya/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves order counts per status, optionally limited
// to a time window. The daily summary job uses a one-day window; the
// dashboard header uses no window at all.
type GetOrderStatsQuery struct {
	from *time.Time
	to   *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a stats query over the given creation-time
// window. Nil bounds leave that side open.
func NewGetOrderStatsQuery(from, to *time.Time) GetOrderStatsQuery {
	return GetOrderStatsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// From returns the inclusive lower bound, or nil.
func (q GetOrderStatsQuery) From() *time.Time {
	return q.from
}

// To returns the exclusive upper bound, or nil.
func (q GetOrderStatsQuery) To() *time.Time {
	return q.to
}

// OrderStats aggregates order counts per lifecycle status plus the revenue
// of delivered orders, in FCFA.
type OrderStats struct {
	Pending          int `json:"pending"`
	Confirmed        int `json:"confirmed"`
	Assigned         int `json:"assigned"`
	InDelivery       int `json:"inDelivery"`
	Delivered        int `json:"delivered"`
	Cancelled        int `json:"cancelled"`
	Total            int `json:"total"`
	DeliveredRevenue int `json:"deliveredRevenue"`
}
