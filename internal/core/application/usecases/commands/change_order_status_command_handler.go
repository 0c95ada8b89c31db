package commands

import (
	"context"
	"time"
)

// ChangeOrderStatusCommandHandler handles bare status transitions: confirm,
// start delivery, mark delivered, cancel. Assignment goes through
// AssignCourierCommandHandler instead, because it binds a delivery person.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      OrderCache
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, cache OrderCache) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle loads the order, applies the transition and persists the result.
// The repository's optimistic concurrency check turns concurrent updates of
// the same order into errs.VersionIsInvalidError.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = aggregate.TransitionTo(cmd.Target(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Stale cache entries only survive until their TTL, so a failed
	// invalidation is not worth failing the committed command.
	_ = h.cache.Invalidate(ctx, cmd.OrderID())

	return nil
}
