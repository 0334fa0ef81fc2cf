package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByIDWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListPaged(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, int64, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) OnStatusChanged(ctx context.Context, o *order.Order, previous order.Status) error {
	args := m.Called(ctx, o, previous)
	return args.Error(0)
}

func (m *MockOrderNotifier) OnReadyForPickup(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func line(t *testing.T, name, price string, qty int) commands.OrderLine {
	t.Helper()
	return commands.OrderLine{
		ProductID:   kernel.NewUUID(),
		ProductName: name,
		UnitPrice:   money(t, price),
		Quantity:    qty,
	}
}

// orderIn builds a persisted-looking order and walks it to the given statuses.
func orderIn(t *testing.T, path ...order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Burger", money(t, "10.00"), 3)
	require.NoError(t, err)
	o, err := order.NewOrder(nil, []order.Item{item})
	require.NoError(t, err)
	for _, s := range path {
		require.NoError(t, o.UpdateStatus(s))
	}
	return o
}
