package commands_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/coupon"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

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

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCouponRepository struct{ mock.Mock }

func (m *MockCouponRepository) Add(ctx context.Context, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

type MockSettlementRepository struct{ mock.Mock }

func (m *MockSettlementRepository) ApplyDelivery(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, events ...order.StatusChanged) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]order.StatusChanged, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusChanged), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, eventID kernel.UUID, at time.Time) error {
	args := m.Called(ctx, eventID, at)
	return args.Error(0)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) NotifyCustomer(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationPublisher) BroadcastTopic(ctx context.Context, topic string, n ports.Notification) error {
	args := m.Called(ctx, topic, n)
	return args.Error(0)
}

type MockStatusMirror struct{ mock.Mock }

func (m *MockStatusMirror) Mirror(ctx context.Context, event order.StatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
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

func (m *MockUoW) CouponRepository() ports.CouponRepository {
	args := m.Called()
	return args.Get(0).(ports.CouponRepository)
}

func (m *MockUoW) SettlementRepository() ports.SettlementRepository {
	args := m.Called()
	return args.Get(0).(ports.SettlementRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCouponUoWFactory struct{ mock.Mock }

func (m *MockCouponUoWFactory) Create() commands.CouponUoW {
	args := m.Called()
	return args.Get(0).(commands.CouponUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}
