package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle(t *testing.T) {
	t.Run("adds the line and recomputes the total", func(t *testing.T) {
		ctx := t.Context()
		existing := orderIn(t)
		cmd, err := commands.NewAddOrderItemCommand(existing.ID(), line(t, "Soda", "2.50", 2))
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetByIDWithItems", ctx, existing.ID()).Return(existing, nil).Once(),
			repo.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddOrderItemCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, 2, existing.ItemCount())
		assert.Equal(t, "35.00", existing.TotalPrice().String())
		uow.AssertExpectations(t)
	})

	t.Run("rejects an invalid line before opening a transaction", func(t *testing.T) {
		cmd, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), line(t, "Soda", "2.50", 0))
		require.NoError(t, err)
		factory := new(MockOrderUoWFactory)

		h := commands.NewAddOrderItemCommandHandler(factory)
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("fails once the order left Pending", func(t *testing.T) {
		ctx := t.Context()
		existing := orderIn(t, order.AwaitingPayment)
		cmd, _ := commands.NewAddOrderItemCommand(existing.ID(), line(t, "Soda", "2.50", 1))

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetByIDWithItems", ctx, existing.ID()).Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAddOrderItemCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("constructor rejects a zero order id", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(kernel.UUID{}, line(t, "Soda", "2.50", 1))
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRemoveOrderItemCommandHandler_Handle(t *testing.T) {
	twoLineOrder := func(t *testing.T) (*order.Order, kernel.UUID) {
		t.Helper()
		o := orderIn(t)
		soda, err := order.NewItem(kernel.NewUUID(), "Soda", money(t, "2.50"), 2)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(soda))
		return o, soda.ProductID()
	}

	t.Run("removes the line", func(t *testing.T) {
		ctx := t.Context()
		existing, productID := twoLineOrder(t)
		cmd, err := commands.NewRemoveOrderItemCommand(existing.ID(), productID)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetByIDWithItems", ctx, existing.ID()).Return(existing, nil).Once(),
			repo.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveOrderItemCommandHandler(factory)
		removed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, "30.00", existing.TotalPrice().String())
		uow.AssertExpectations(t)
	})

	t.Run("unknown product writes nothing", func(t *testing.T) {
		ctx := t.Context()
		existing, _ := twoLineOrder(t)
		cmd, _ := commands.NewRemoveOrderItemCommand(existing.ID(), kernel.NewUUID())

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetByIDWithItems", ctx, existing.ID()).Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveOrderItemCommandHandler(factory)
		removed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, removed)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("the last line cannot be removed", func(t *testing.T) {
		ctx := t.Context()
		existing := orderIn(t)
		cmd, _ := commands.NewRemoveOrderItemCommand(existing.ID(), existing.Items()[0].ProductID())

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetByIDWithItems", ctx, existing.ID()).Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveOrderItemCommandHandler(factory)
		removed, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.False(t, removed)
		assert.Equal(t, 1, existing.ItemCount())
	})

	t.Run("begin failure is returned", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewRemoveOrderItemCommand(kernel.NewUUID(), kernel.NewUUID())
		beginErr := errors.New("pool exhausted")

		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(beginErr).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRemoveOrderItemCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, beginErr)
		uow.AssertNotCalled(t, "OrderRepository")
	})
}

func TestAttachPaymentCommand(t *testing.T) {
	t.Run("requires at least one artifact", func(t *testing.T) {
		_, err := commands.NewAttachPaymentCommand(kernel.NewUUID(), " ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "qrCode or paymentPreferenceId")
	})

	t.Run("trims values", func(t *testing.T) {
		cmd, err := commands.NewAttachPaymentCommand(kernel.NewUUID(), "  qr-data ", "")

		require.NoError(t, err)
		assert.Equal(t, "qr-data", cmd.QRCode())
		assert.Empty(t, cmd.PaymentPreferenceID())
	})
}

func TestAttachPaymentCommandHandler_Handle(t *testing.T) {
	t.Run("stores the supplied artifacts in any status", func(t *testing.T) {
		ctx := t.Context()
		existing := orderIn(t, order.AwaitingPayment, order.Paid)
		cmd, _ := commands.NewAttachPaymentCommand(existing.ID(), "", "pref-123")

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetByIDWithItems", ctx, existing.ID()).Return(existing, nil).Once(),
			repo.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAttachPaymentCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, "pref-123", existing.PaymentPreferenceID())
		assert.Empty(t, existing.QRCode())
		uow.AssertExpectations(t)
	})

	t.Run("not found is returned unchanged", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewAttachPaymentCommand(id, "qr", "")

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetByIDWithItems", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAttachPaymentCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
