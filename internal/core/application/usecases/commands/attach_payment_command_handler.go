package commands

import (
	"context"
)

// AttachPaymentCommandHandler records payment artifacts on an order. The order status
// is not consulted; artifacts may be attached in any status.
type AttachPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachPaymentCommandHandler creates a handler for payment artifacts.
func NewAttachPaymentCommandHandler(uowFactory OrderUoWFactory) AttachPaymentCommandHandler {
	return AttachPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets every supplied artifact and persists the order.
func (h *AttachPaymentCommandHandler) Handle(ctx context.Context, cmd AttachPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByIDWithItems(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if code := cmd.QRCode(); code != "" {
		if err = aggregate.SetQRCode(code); err != nil {
			return err
		}
	}
	if preferenceID := cmd.PaymentPreferenceID(); preferenceID != "" {
		if err = aggregate.SetPaymentPreferenceID(preferenceID); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
