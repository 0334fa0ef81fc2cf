package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// UpdateOrderStatusResult reports the outcome of a status change.
type UpdateOrderStatusResult struct {
	ID               kernel.UUID
	Status           order.Status
	UpdatedAt        *time.Time
	NotificationSent bool
}

// UpdateOrderStatusCommandHandler moves an order through its lifecycle and tells the
// notifier about it once the change is committed.
//
// Errors returned unchanged: validation (unknown status name), object not found,
// invalid transition and invalid state (a failed precondition). Anything else is logged with the order id and requested status,
// then returned wrapped.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, "Ready")
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the order is not in a state that can become Ready
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle applies the requested status inside a transaction and then awaits both
// notifications. A cancelled context stops the flow before any I/O starts.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	log := h.logger.With("order_id", cmd.OrderID().String(), "status", cmd.Status())
	log.InfoContext(ctx, "Updating order status")

	aggregate, previous, err := h.apply(ctx, cmd)
	if err != nil {
		if isExpectedFailure(err) {
			log.WarnContext(ctx, "Order status update rejected", "error", err)
			return UpdateOrderStatusResult{}, err
		}
		log.ErrorContext(ctx, "Order status update failed", "error", err)
		return UpdateOrderStatusResult{}, fmt.Errorf("update status of order %s: %w", cmd.OrderID(), err)
	}

	if err = h.notifier.OnStatusChanged(ctx, aggregate, previous); err != nil {
		log.ErrorContext(ctx, "Status change notification failed", "previous_status", previous.String(), "error", err)
		return UpdateOrderStatusResult{}, fmt.Errorf("notify status change of order %s: %w", cmd.OrderID(), err)
	}

	if aggregate.Status() == order.Ready {
		if err = h.notifier.OnReadyForPickup(ctx, aggregate); err != nil {
			log.ErrorContext(ctx, "Ready for pickup notification failed", "error", err)
			return UpdateOrderStatusResult{}, fmt.Errorf("notify order %s ready: %w", cmd.OrderID(), err)
		}
	}

	log.InfoContext(ctx, "Order status updated", "previous_status", previous.String())

	return UpdateOrderStatusResult{
		ID:               aggregate.ID(),
		Status:           aggregate.Status(),
		UpdatedAt:        aggregate.UpdatedAt(),
		NotificationSent: true,
	}, nil
}

// apply loads the order, parses the requested status, transitions and stores the order
// in one unit of work. It returns the committed aggregate together with the status it
// had before. An unknown order is reported before an unknown status name.
func (h *UpdateOrderStatusCommandHandler) apply(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, order.Status, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByIDWithItems(ctx, cmd.OrderID())
	if err != nil {
		return nil, order.Unknown, err
	}

	next, err := order.ParseStatus(cmd.Status())
	if err != nil {
		return nil, order.Unknown, err
	}

	if err = cmd.checkPrecondition(aggregate); err != nil {
		return nil, order.Unknown, err
	}

	previous := aggregate.Status()
	if err = aggregate.UpdateStatus(next); err != nil {
		return nil, order.Unknown, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, order.Unknown, err
	}

	return aggregate, previous, nil
}

// isExpectedFailure reports errors that are part of the contract rather than faults.
func isExpectedFailure(err error) bool {
	return errs.IsValidation(err) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errs.IsConflict(err)
}
