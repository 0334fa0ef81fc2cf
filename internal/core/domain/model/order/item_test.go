package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewItem(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("should create item with derived subtotal", func(t *testing.T) {
		item, err := order.NewItem(productID, "Margherita", money(t, "19.90"), 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		require.NoError(t, item.ID().Validate())
		assert.False(t, item.ID().IsEqual(productID))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, "Margherita", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "39.80", item.Subtotal().String())
	})

	t.Run("should reject every invalid field at once", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, "   ", kernel.ZeroMoney(), 0)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "productId")
		assert.Contains(t, err.Error(), "productName")
		assert.Contains(t, err.Error(), "unitPrice")
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := order.NewItem(productID, "Soda", money(t, "5.00"), -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is not greater than 0")
	})

	t.Run("should generate distinct item ids", func(t *testing.T) {
		a, _ := order.NewItem(productID, "Soda", money(t, "5.00"), 1)
		b, _ := order.NewItem(productID, "Soda", money(t, "5.00"), 1)

		assert.False(t, a.ID().IsEqual(b.ID()))
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should keep stored id", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := order.RestoreItem(id, kernel.NewUUID(), "Fries", money(t, "7.50"), 1)

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
	})

	t.Run("should reject missing id", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.UUID{}, kernel.NewUUID(), "Fries", money(t, "7.50"), 1)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestItem_WithQuantity(t *testing.T) {
	original, _ := order.NewItem(kernel.NewUUID(), "Salad", money(t, "12.25"), 1)

	t.Run("should return new value and leave original untouched", func(t *testing.T) {
		changed, err := original.WithQuantity(3)

		require.NoError(t, err)
		assert.Equal(t, 3, changed.Quantity())
		assert.Equal(t, "36.75", changed.Subtotal().String())
		assert.True(t, changed.ID().IsEqual(original.ID()))
		assert.Equal(t, 1, original.Quantity())
		assert.Equal(t, "12.25", original.Subtotal().String())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := original.WithQuantity(0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value item", func(t *testing.T) {
		var item order.Item

		_, err := item.WithQuantity(2)

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestItem_IsEqual(t *testing.T) {
	productID := kernel.NewUUID()
	a, _ := order.NewItem(productID, "Tea", money(t, "3.00"), 2)
	b, _ := order.NewItem(productID, "Tea", money(t, "3"), 2)

	t.Run("should compare by value and ignore item id", func(t *testing.T) {
		assert.False(t, a.ID().IsEqual(b.ID()))
		assert.True(t, a.IsEqual(b))
	})

	t.Run("should differ when any value differs", func(t *testing.T) {
		otherQty, _ := a.WithQuantity(3)
		otherName, _ := order.NewItem(productID, "Green tea", money(t, "3.00"), 2)
		otherPrice, _ := order.NewItem(productID, "Tea", money(t, "3.10"), 2)
		otherProduct, _ := order.NewItem(kernel.NewUUID(), "Tea", money(t, "3.00"), 2)

		assert.False(t, a.IsEqual(otherQty))
		assert.False(t, a.IsEqual(otherName))
		assert.False(t, a.IsEqual(otherPrice))
		assert.False(t, a.IsEqual(otherProduct))
	})
}
