package commands

import (
	"errors"
	"strings"

	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/pkg/guard"
)

var (
	ErrUpdateCourierCommandIsNotConstructed = errors.New(
		"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
	)
	// ErrNothingToUpdate is returned when a courier update carries no fields.
	ErrNothingToUpdate = errors.New("at least one field must be provided")
)

// UpdateCourierCommand represents a partial update of a roster entry. Nil
// fields are left untouched; at least one field must be set.
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      *string
	phone     *string
	active    *bool

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a patch command for a roster entry.
// Provided name and phone values must be non-blank.
func NewUpdateCourierCommand(courierID kernel.UUID, name, phone *string, active *bool) (UpdateCourierCommand, error) {
	cmd := UpdateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courierID.Validate(),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return UpdateCourierCommand{}, err
	}

	if name == nil && phone == nil && active == nil {
		return UpdateCourierCommand{}, ErrNothingToUpdate
	}

	cmd.courierID = courierID
	cmd.active = active

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier of the roster entry to update.
func (c UpdateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the new display name, or nil to keep the current one.
func (c UpdateCourierCommand) Name() *string {
	return c.name
}

// Phone returns the new contact phone, or nil to keep the current one.
func (c UpdateCourierCommand) Phone() *string {
	return c.phone
}

// Active returns the new availability flag, or nil to keep the current one.
func (c UpdateCourierCommand) Active() *bool {
	return c.active
}

func (c *UpdateCourierCommand) setName(name *string) error {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return courier.ErrNameIsRequired
	}
	c.name = &trimmed
	return nil
}

func (c *UpdateCourierCommand) setPhone(phone *string) error {
	if phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*phone)
	if trimmed == "" {
		return courier.ErrPhoneIsRequired
	}
	c.phone = &trimmed
	return nil
}
