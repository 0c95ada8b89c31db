package commands

import (
	"errors"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to hand an order to a specific
// delivery person. The operator picks the person; there is no automatic
// matching.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to an order.
func NewAssignCourierCommand(orderID, courierID kernel.UUID) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		courierID.Validate(),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	cmd.orderID = orderID
	cmd.courierID = courierID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the chosen delivery person.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
