package queries

import (
	"errors"

	"ayoya/internal/pkg/guard"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery retrieves the delivery roster. The roster is small, so
// there is no pagination; inactive people can be filtered out for the
// assignment picker.
type ListCouriersQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewListCouriersQuery creates a query for the roster. With activeOnly set,
// only people eligible for new assignments are returned.
func NewListCouriersQuery(activeOnly bool) ListCouriersQuery {
	return ListCouriersQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive people are excluded.
func (q ListCouriersQuery) ActiveOnly() bool {
	return q.activeOnly
}
