package queries

import (
	"errors"
	"strings"
	"time"

	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/guard"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows the order list. Zero values mean "no constraint".
type OrderFilter struct {
	// Status keeps only orders in the given lifecycle status.
	Status string
	// City keeps only orders delivered in the given city (case-insensitive).
	City string
	// CreatedFrom and CreatedTo bound the creation timestamp (inclusive
	// from, exclusive to).
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	// Search matches the order number, customer name or phone.
	Search string
}

// ListOrdersQuery retrieves a filtered, paginated page of orders, newest
// first.
//
// Example:
//
//	query, err := NewListOrdersQuery(OrderFilter{Status: "pending"}, 1, 0)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter   OrderFilter
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of the order list.
// Page numbers start at 1; page 0 means the first page. A pageSize of 0
// falls back to the default of 10, and oversized requests are capped.
// A non-empty filter status must parse as a known status.
func NewListOrdersQuery(filter OrderFilter, page, pageSize int) (ListOrdersQuery, error) {
	if filter.Status != "" {
		if _, err := order.StatusFromString(filter.Status); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter.City = strings.TrimSpace(filter.City)
	filter.Search = strings.TrimSpace(filter.Search)

	return ListOrdersQuery{
		filter:   filter,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the list constraints.
func (q ListOrdersQuery) Filter() OrderFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of items per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the SQL offset for the requested page.
func (q ListOrdersQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}

// OrdersPage is one page of the order list together with the total match
// count, so the dashboard can render pagination controls.
type OrdersPage struct {
	Items    []OrderReadModel `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}
