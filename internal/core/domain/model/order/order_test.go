package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, name, price string, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), name, money(t, price), qty)
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(nil, []order.Item{
		newItem(t, "Burger", "10.00", 3),
		newItem(t, "Soda", "5.00", 1),
	})
	require.NoError(t, err)
	return o
}

func moveTo(t *testing.T, o *order.Order, path ...order.Status) {
	t.Helper()
	for _, s := range path {
		require.NoError(t, o.UpdateStatus(s))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending anonymous order", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Second)

		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		assert.Nil(t, o.CustomerID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "35.00", o.TotalPrice().String())
		assert.Equal(t, 2, o.ItemCount())
		assert.True(t, o.CreatedAt().After(before))
		assert.Nil(t, o.UpdatedAt())
		assert.Empty(t, o.QRCode())
		assert.Empty(t, o.PaymentPreferenceID())
	})

	t.Run("should compute exact decimal total", func(t *testing.T) {
		o, err := order.NewOrder(nil, []order.Item{
			newItem(t, "Pizza", "19.90", 2),
			newItem(t, "Fries", "7.50", 1),
			newItem(t, "Salad", "12.25", 3),
		})

		require.NoError(t, err)
		assert.True(t, o.TotalPrice().IsEqual(money(t, "84.05")))
	})

	t.Run("should keep customer reference", func(t *testing.T) {
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(&customerID, []order.Item{newItem(t, "Tea", "3.00", 1)})

		require.NoError(t, err)
		require.NotNil(t, o.CustomerID())
		assert.True(t, o.CustomerID().IsEqual(customerID))
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		o, err := order.NewOrder(nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with nil uuid customer", func(t *testing.T) {
		var empty kernel.UUID

		o, err := order.NewOrder(&empty, []order.Item{newItem(t, "Tea", "3.00", 1)})

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should reject zero value item", func(t *testing.T) {
		_, err := order.NewOrder(nil, []order.Item{{}})

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should not share the caller's slice", func(t *testing.T) {
		items := []order.Item{newItem(t, "Tea", "3.00", 1)}
		o, _ := order.NewOrder(nil, items)

		items[0] = newItem(t, "Coffee", "9.00", 9)

		assert.Equal(t, "Tea", o.Items()[0].ProductName())
		assert.Equal(t, "3.00", o.TotalPrice().String())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	items := []order.Item{newItem(t, "Burger", "10.00", 2)}
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	t.Run("should rebuild order and recompute total", func(t *testing.T) {
		o, err := order.RestoreOrder(id, nil, items, order.Paid, "qr", "pref-1", createdAt, &updatedAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "20.00", o.TotalPrice().String())
		assert.Equal(t, "qr", o.QRCode())
		assert.Equal(t, "pref-1", o.PaymentPreferenceID())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.UpdatedAt())
		assert.Equal(t, updatedAt, *o.UpdatedAt())
	})

	t.Run("should reject invalid persisted data", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.UUID{}, nil, nil, order.Unknown, "", "", time.Time{}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "createdAt")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value orders", func(t *testing.T) {
		var nilOrder *order.Order
		var zero order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
		assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append item and recompute total", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.AddItem(newItem(t, "Pie", "4.25", 2))

		require.NoError(t, err)
		assert.Equal(t, 3, o.ItemCount())
		assert.Equal(t, "43.50", o.TotalPrice().String())
		assert.NotNil(t, o.UpdatedAt())
	})

	t.Run("should fail outside Pending and leave items unchanged", func(t *testing.T) {
		o := newPendingOrder(t)
		moveTo(t, o, order.Processing)
		itemsBefore := o.Items()

		err := o.AddItem(newItem(t, "Pie", "4.25", 1))

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, itemsBefore, o.Items())
		assert.Equal(t, "35.00", o.TotalPrice().String())
	})

	t.Run("should reject zero value item", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.AddItem(order.Item{})

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
		assert.Nil(t, o.UpdatedAt())
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("should remove matching item and recompute total", func(t *testing.T) {
		o := newPendingOrder(t)
		soda := o.Items()[1]

		removed, err := o.RemoveItem(soda.ProductID())

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, 1, o.ItemCount())
		assert.Equal(t, "30.00", o.TotalPrice().String())
		assert.NotNil(t, o.UpdatedAt())
	})

	t.Run("should return false when product is absent", func(t *testing.T) {
		o := newPendingOrder(t)

		removed, err := o.RemoveItem(kernel.NewUUID())

		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 2, o.ItemCount())
		assert.Nil(t, o.UpdatedAt())
	})

	t.Run("should fail outside Pending", func(t *testing.T) {
		o := newPendingOrder(t)
		moveTo(t, o, order.AwaitingPayment)
		productID := o.Items()[0].ProductID()

		removed, err := o.RemoveItem(productID)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.False(t, removed)
		assert.Equal(t, 2, o.ItemCount())
	})

	t.Run("should refuse to remove the last item", func(t *testing.T) {
		o, _ := order.NewOrder(nil, []order.Item{newItem(t, "Tea", "3.00", 1)})

		removed, err := o.RemoveItem(o.Items()[0].ProductID())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.False(t, removed)
		assert.Equal(t, 1, o.ItemCount())
	})
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o := newPendingOrder(t)

	items := o.Items()
	items[0] = newItem(t, "Injected", "999.00", 1)
	_ = append(items, newItem(t, "Injected", "999.00", 1))

	assert.Equal(t, "Burger", o.Items()[0].ProductName())
	assert.Equal(t, 2, o.ItemCount())
	assert.Equal(t, "35.00", o.TotalPrice().String())
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("should move along the table and set updatedAt", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.UpdateStatus(order.AwaitingPayment))

		assert.Equal(t, order.AwaitingPayment, o.Status())
		assert.NotNil(t, o.UpdatedAt())
	})

	t.Run("should treat same status as idempotent but still touch updatedAt", func(t *testing.T) {
		o := newPendingOrder(t)
		require.Nil(t, o.UpdatedAt())

		require.NoError(t, o.UpdateStatus(order.Pending))
		first := o.UpdatedAt()
		require.NoError(t, o.UpdateStatus(order.Pending))
		second := o.UpdatedAt()

		assert.Equal(t, order.Pending, o.Status())
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.False(t, second.Before(*first))
	})

	t.Run("should allow same status on terminal orders", func(t *testing.T) {
		o := newPendingOrder(t)
		moveTo(t, o, order.Cancelled)

		require.NoError(t, o.UpdateStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	invalid := []struct {
		name  string
		setup []order.Status
		next  order.Status
	}{
		{"Pending to Ready", nil, order.Ready},
		{"Pending to Completed", nil, order.Completed},
		{"AwaitingPayment to Processing", []order.Status{order.AwaitingPayment}, order.Processing},
		{"Paid to Cancelled", []order.Status{order.Paid}, order.Cancelled},
		{"Ready to Pending", []order.Status{order.Processing, order.Ready}, order.Pending},
		{"Completed to Processing", []order.Status{order.Processing, order.Ready, order.Completed}, order.Processing},
		{"Cancelled to Pending", []order.Status{order.Cancelled}, order.Pending},
	}
	for _, tc := range invalid {
		t.Run("should reject "+tc.name+" without changing state", func(t *testing.T) {
			o := newPendingOrder(t)
			moveTo(t, o, tc.setup...)
			statusBefore := o.Status()
			itemsBefore := o.Items()
			totalBefore := o.TotalPrice()
			updatedBefore := o.UpdatedAt()

			err := o.UpdateStatus(tc.next)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Contains(t, err.Error(), statusBefore.String())
			assert.Contains(t, err.Error(), tc.next.String())
			assert.Equal(t, statusBefore, o.Status())
			assert.Equal(t, itemsBefore, o.Items())
			assert.True(t, totalBefore.IsEqual(o.TotalPrice()))
			assert.Equal(t, updatedBefore, o.UpdatedAt())
		})
	}

	t.Run("should allow Processing back to Pending and then editing items", func(t *testing.T) {
		o := newPendingOrder(t)
		moveTo(t, o, order.Processing, order.Pending)

		require.NoError(t, o.AddItem(newItem(t, "Pie", "1.00", 1)))
		assert.Equal(t, "36.00", o.TotalPrice().String())
	})

	t.Run("should reject unknown target status", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateStatus(order.Unknown)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_PaymentArtifacts(t *testing.T) {
	t.Run("should set qr code and preference id in any status", func(t *testing.T) {
		o := newPendingOrder(t)
		moveTo(t, o, order.Processing, order.Ready)

		require.NoError(t, o.SetQRCode("00020126580014br.gov.bcb.pix"))
		require.NoError(t, o.SetPaymentPreferenceID("pref-123"))

		assert.Equal(t, "00020126580014br.gov.bcb.pix", o.QRCode())
		assert.Equal(t, "pref-123", o.PaymentPreferenceID())
		assert.NotNil(t, o.UpdatedAt())
	})

	t.Run("should reject blank values", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.SetQRCode(" "), errs.ErrValueIsRequired)
		require.ErrorIs(t, o.SetPaymentPreferenceID(""), errs.ErrValueIsRequired)
		assert.Empty(t, o.QRCode())
		assert.Empty(t, o.PaymentPreferenceID())
		assert.Nil(t, o.UpdatedAt())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	o := newPendingOrder(t)
	assert.Equal(t, "35.00", o.TotalPrice().String())

	require.NoError(t, o.UpdateStatus(order.AwaitingPayment))
	require.ErrorIs(t, o.UpdateStatus(order.Processing), errs.ErrInvalidTransition)
	assert.Equal(t, order.AwaitingPayment, o.Status())
	require.NoError(t, o.UpdateStatus(order.Paid))
	require.NoError(t, o.UpdateStatus(order.Processing))
	require.NoError(t, o.UpdateStatus(order.Ready))
	require.NoError(t, o.UpdateStatus(order.Completed))

	for _, s := range order.Statuses() {
		if s == order.Completed {
			continue
		}
		require.ErrorIs(t, o.UpdateStatus(s), errs.ErrInvalidTransition, s.String())
	}
	assert.Equal(t, order.Completed, o.Status())
}
