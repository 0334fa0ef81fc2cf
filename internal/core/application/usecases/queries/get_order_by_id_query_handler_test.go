package queries_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderByIDQuery(t *testing.T) {
	t.Run("rejects the nil uuid", func(t *testing.T) {
		_, err := queries.NewGetOrderByIDQuery(kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		err := queries.GetOrderByIDQuery{}.Validate()
		require.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
	})
}

func TestGetOrderByIDQueryHandler_Handle(t *testing.T) {
	t.Run("found order is projected with items", func(t *testing.T) {
		ctx := t.Context()
		customerID := kernel.NewUUID()
		existing := newOrder(t, &customerID, "12.50", "5.00")
		query, _ := queries.NewGetOrderByIDQuery(existing.ID())

		reader := new(MockOrderReader)
		reader.On("GetByIDWithItems", ctx, existing.ID()).Return(existing, nil).Once()

		response, err := queries.NewGetOrderByIDQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		require.True(t, response.Found)
		assert.True(t, response.Order.ID.IsEqual(existing.ID()))
		require.NotNil(t, response.Order.CustomerID)
		assert.True(t, response.Order.CustomerID.IsEqual(customerID))
		assert.Equal(t, order.Pending, response.Order.Status)
		assert.Equal(t, "35.00", response.Order.TotalPrice.String())
		require.Len(t, response.Order.Items, 2)
		assert.Equal(t, "25.00", response.Order.Items[0].Subtotal.String())
		assert.Equal(t, "10.00", response.Order.Items[1].Subtotal.String())
	})

	t.Run("missing order is not an error", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		query, _ := queries.NewGetOrderByIDQuery(id)

		reader := new(MockOrderReader)
		reader.On("GetByIDWithItems", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

		response, err := queries.NewGetOrderByIDQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.False(t, response.Found)
	})

	t.Run("unexpected errors propagate", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		query, _ := queries.NewGetOrderByIDQuery(id)
		dbErr := errors.New("connection refused")

		reader := new(MockOrderReader)
		reader.On("GetByIDWithItems", ctx, id).Return(nil, dbErr).Once()

		_, err := queries.NewGetOrderByIDQueryHandler(reader).Handle(ctx, query)

		require.ErrorIs(t, err, dbErr)
	})
}
