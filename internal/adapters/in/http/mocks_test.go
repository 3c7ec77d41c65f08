package http_test

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (order.Breakdown, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Breakdown), args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(
	ctx context.Context, cmd commands.ChangeOrderStatusCommand,
) (order.Decision, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Decision), args.Error(1)
}

type MockAssignDriverHandler struct{ mock.Mock }

func (m *MockAssignDriverHandler) Handle(ctx context.Context, cmd commands.AssignDriverCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCreateCouponHandler struct{ mock.Mock }

func (m *MockCreateCouponHandler) Handle(ctx context.Context, cmd commands.CreateCouponCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(
	ctx context.Context, query queries.GetOrderQuery,
) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockGetRestaurantOrdersHandler struct{ mock.Mock }

func (m *MockGetRestaurantOrdersHandler) Handle(
	ctx context.Context, query queries.GetRestaurantOrdersQuery,
) ([]queries.RestaurantOrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.RestaurantOrderView), args.Error(1)
}
