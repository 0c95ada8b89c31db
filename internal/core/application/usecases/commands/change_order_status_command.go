package commands

import (
	"errors"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The transition itself is validated by the aggregate; the
// command only guarantees the identifier and the target status parse.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// The target is the wire representation, e.g. "confirmed" or "in_delivery".
func NewChangeOrderStatusCommand(orderID kernel.UUID, target string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	parsed, parseErr := order.StatusFromString(target)
	if err := errors.Join(
		orderID.Validate(),
		parseErr,
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.target = parsed

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}
