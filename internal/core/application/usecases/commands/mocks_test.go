package commands_test

import (
	"context"

	"ayoya/internal/core/application/usecases/commands"
	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work flavor the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// noopOrderCache is used where cache behavior is not under test.
type noopOrderCache struct{}

func (noopOrderCache) Invalidate(context.Context, kernel.UUID) error { return nil }

type MockOrderCache struct{ mock.Mock }

func (m *MockOrderCache) Invalidate(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
