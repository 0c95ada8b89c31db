package commands

import (
	"context"
	"time"

	"ayoya/internal/core/domain/services"
)

// AssignCourierCommandHandler orchestrates delivery-person assignment.
// Loads both aggregates in one transaction, applies the assignment rules
// through the domain service and persists the order.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, cache)
//	cmd, _ := NewAssignCourierCommand(orderID, courierID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or courier
//	case errors.Is(err, courier.ErrCourierInactive):
//	    // person is off the roster for now
//	case errors.Is(err, order.ErrAssignmentLocked):
//	    // delivery already started
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	assignment services.AssignmentService
	cache      OrderCache
}

// NewAssignCourierCommandHandler creates a handler for assignment operations.
func NewAssignCourierCommandHandler(uowFactory UoWFactory, cache OrderCache) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		assignment: services.NewAssignmentService(),
		cache:      cache,
	}
}

// Handle processes the assignment command. Only the order changes; the
// courier aggregate is read to check roster membership and availability.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	person, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = h.assignment.Assign(aggregate, person, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Invalidate(ctx, cmd.OrderID())

	return nil
}
