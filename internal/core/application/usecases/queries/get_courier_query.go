package queries

import (
	"errors"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/pkg/guard"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves a single roster entry by identifier.
type GetCourierQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for one roster entry.
func NewGetCourierQuery(courierID kernel.UUID) (GetCourierQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierQuery{}, err
	}

	return GetCourierQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the identifier of the requested roster entry.
func (q GetCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}
