package commands

import (
	"errors"
	"strings"

	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to add a delivery person to the
// roster.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new delivery person.
func NewCreateCourierCommand(name, phone string) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// Name returns the delivery person's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the delivery person's contact phone.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

func (c *CreateCourierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return courier.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return courier.ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
