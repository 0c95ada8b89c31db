package commands

import (
	"context"
	"time"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
)

// CreateOrderResult carries the identifiers the caller needs right after
// registering an order: the aggregate ID for follow-up calls, the reference
// the customer is told on the phone, and the computed total.
type CreateOrderResult struct {
	OrderID     kernel.UUID
	OrderNumber string
	TotalAmount int
}

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in pending status with their total fixed from the
// handler's pricing configuration.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    order.Pricing
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The pricing is captured once at startup; every order created through this
// handler uses it to compute the total.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, pricing order.Pricing) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the order creation command. It generates the aggregate
// identity and the customer-facing reference, builds the order and persists
// it in a transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(now),
		cmd.Customer(),
		cmd.Address(),
		cmd.OrderType(),
		cmd.Quantity(),
		cmd.PaymentMethod(),
		cmd.DeliveryMethod(),
		cmd.Notes(),
		h.pricing,
		now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:     newOrder.ID(),
		OrderNumber: newOrder.Number(),
		TotalAmount: newOrder.TotalAmount(),
	}, nil
}
