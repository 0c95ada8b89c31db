package commands

import (
	"context"
	"fmt"

	"ayoya/internal/core/domain/model/courier"
)

// DeleteCourierCommandHandler handles roster removals. A person with orders
// still in flight cannot be removed; the operator reassigns or completes
// those orders first.
type DeleteCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteCourierCommandHandler creates a handler for roster removals.
func NewDeleteCourierCommandHandler(uowFactory UoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the courier exists and has no assigned or in_delivery
// orders, then removes them. The existence check and the active-order check
// share one transaction so a concurrent assignment cannot slip between them.
func (h DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
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

	activeOrders, err := uow.OrderRepository().GetAllActiveByCourier(ctx, person.ID())
	if err != nil {
		return err
	}
	if len(activeOrders) > 0 {
		return fmt.Errorf("%w: %s has %d order(s) in flight",
			courier.ErrCourierHasActiveOrders, person.Name(), len(activeOrders))
	}

	if err = courierRepo.Delete(ctx, person.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
