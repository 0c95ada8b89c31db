package commands_test

import (
	"testing"
	"time"

	"ayoya/internal/core/application/usecases/commands"
	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.TransitionTo(order.Confirmed, time.Now()))
	return o
}

func activeCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Jean Agossou", "+229 95 11 22 33", time.Now())
	require.NoError(t, err)
	return c
}

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := confirmedOrder(t)
	person := activeCourier(t)
	cmd, err := commands.NewAssignCourierCommand(aggregate.ID(), person.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", mock.Anything, person.ID()).Return(person, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockOrderCache)
	cache.On("Invalidate", mock.Anything, aggregate.ID()).Return(nil).Once()

	h := commands.NewAssignCourierCommandHandler(factory, cache)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Assigned, aggregate.Status())
	require.NotNil(t, aggregate.Courier())
	assert.True(t, aggregate.Courier().IsEqual(person.ID()))
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_InactiveCourier(t *testing.T) {
	ctx := t.Context()
	aggregate := confirmedOrder(t)
	person := activeCourier(t)
	person.Deactivate(time.Now())
	cmd, err := commands.NewAssignCourierCommand(aggregate.ID(), person.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", mock.Anything, person.ID()).Return(person, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCourierCommandHandler(factory, noopOrderCache{})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, courier.ErrCourierInactive)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignCourierCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("orderId", orderID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCourierCommandHandler(factory, noopOrderCache{})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
