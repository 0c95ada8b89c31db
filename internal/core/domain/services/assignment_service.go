package services

import (
	"fmt"
	"time"

	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/order"
)

// AssignmentService is a domain service that assigns a delivery person to an
// order. The order aggregate enforces its own status rules; this service adds
// the cross-aggregate rule that the chosen person must be on the roster and
// active.
//
// Business rules:
//   - the courier must be valid and active
//   - the order must be in a state that accepts an assignment (confirmed, or
//     assigned for reassignment)
//   - assignment is atomic: status and courier change together or not at all
type AssignmentService struct{}

// NewAssignmentService creates a new AssignmentService instance.
func NewAssignmentService() AssignmentService {
	return AssignmentService{}
}

// Assign binds the courier to the order at the given time.
//
// Returns ErrCourierInactive when the courier is deactivated, and the order
// aggregate's errors (ErrAssignmentLocked, InvalidOrderStateError) when the
// order cannot accept an assignment.
func (s AssignmentService) Assign(o *order.Order, c *courier.Courier, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if !c.IsActive() {
		return fmt.Errorf("%w: %s", courier.ErrCourierInactive, c.Name())
	}

	return o.Assign(c.ID(), now)
}
