package commands

import (
	"context"
	"time"
)

// UpdateCourierCommandHandler handles partial updates of roster entries.
type UpdateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierCommandHandler creates a handler for roster updates.
func NewUpdateCourierCommandHandler(uowFactory CourierUoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the courier, applies the provided fields and persists the
// result.
func (h UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	person, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	now := time.Now()
	if cmd.Name() != nil {
		if err = person.Rename(*cmd.Name(), now); err != nil {
			return err
		}
	}
	if cmd.Phone() != nil {
		if err = person.ChangePhone(*cmd.Phone(), now); err != nil {
			return err
		}
	}
	if cmd.Active() != nil {
		if *cmd.Active() {
			person.Activate(now)
		} else {
			person.Deactivate(now)
		}
	}

	if err = courierRepo.Update(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
