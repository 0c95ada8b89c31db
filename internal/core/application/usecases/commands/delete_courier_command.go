package commands

import (
	"errors"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/pkg/guard"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

// DeleteCourierCommand represents a request to remove a delivery person from
// the roster.
type DeleteCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCourierCommand creates a command to remove a roster entry.
func NewDeleteCourierCommand(courierID kernel.UUID) (DeleteCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return DeleteCourierCommand{}, err
	}

	return DeleteCourierCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

// CourierID returns the identifier of the roster entry to remove.
func (c DeleteCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
