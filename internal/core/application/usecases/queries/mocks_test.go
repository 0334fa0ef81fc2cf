package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetByIDWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) ListPaged(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, int64, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderReader) ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrder(t *testing.T, customerID *kernel.UUID, lines ...string) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(lines))
	for _, price := range lines {
		unitPrice, err := kernel.MoneyFromString(price)
		require.NoError(t, err)
		item, err := order.NewItem(kernel.NewUUID(), "Product "+price, unitPrice, 2)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(customerID, items)
	require.NoError(t, err)
	return o
}
