package commands

import (
	"context"
	"time"

	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"
)

// CreateCourierCommandHandler handles adding delivery people to the roster.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for roster additions.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates an active courier and persists it, returning the generated
// identifier.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	person, err := courier.NewCourier(kernel.NewUUID(), cmd.Name(), cmd.Phone(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, person); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return person.ID(), nil
}
