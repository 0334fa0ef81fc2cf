package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

const expiryPageSize = 100

// StatusUpdater is the part of UpdateOrderStatusCommandHandler that expiry depends on.
type StatusUpdater interface {
	Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (UpdateOrderStatusResult, error)
}

// ExpireAwaitingPaymentResult counts what one expiry run did.
type ExpireAwaitingPaymentResult struct {
	Expired int
	Failed  int
}

// ExpireAwaitingPaymentCommandHandler finds stale AwaitingPayment orders and cancels
// each one through the regular status update, so notifications are sent as usual.
// The update re-checks status and age on the locked order, so an order that was paid,
// cancelled or touched between the scan and the update is skipped.
type ExpireAwaitingPaymentCommandHandler struct {
	orders  ports.OrderRepository
	updater StatusUpdater
	logger  *slog.Logger
}

// NewExpireAwaitingPaymentCommandHandler creates the handler. orders is used for
// reading only.
func NewExpireAwaitingPaymentCommandHandler(
	orders ports.OrderRepository,
	updater StatusUpdater,
	logger *slog.Logger,
) ExpireAwaitingPaymentCommandHandler {
	return ExpireAwaitingPaymentCommandHandler{
		orders:  orders,
		updater: updater,
		logger:  logger.With("component", "expire_awaiting_payment_handler"),
	}
}

// Handle scans every AwaitingPayment page first and cancels afterwards, so that
// cancelled orders dropping out of the filter do not shift the pages being read.
func (h *ExpireAwaitingPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireAwaitingPaymentCommand,
) (ExpireAwaitingPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ExpireAwaitingPaymentResult{}, err
	}

	candidates, err := h.findExpired(ctx, cmd)
	if err != nil {
		return ExpireAwaitingPaymentResult{}, err
	}

	var result ExpireAwaitingPaymentResult
	for _, id := range candidates {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		update, cmdErr := NewUpdateOrderStatusCommand(id, order.Cancelled.String())
		if cmdErr != nil {
			return result, cmdErr
		}
		update = update.WithPrecondition(order.AwaitingPayment, cmd.Cutoff())

		if _, err = h.updater.Handle(ctx, update); err != nil {
			if errs.IsConflict(err) || errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			h.logger.ErrorContext(ctx, "Failed to expire order", "order_id", id.String(), "error", err)
			result.Failed++
			continue
		}
		result.Expired++
	}

	return result, nil
}

func (h *ExpireAwaitingPaymentCommandHandler) findExpired(
	ctx context.Context,
	cmd ExpireAwaitingPaymentCommand,
) ([]kernel.UUID, error) {
	status := order.AwaitingPayment
	var candidates []kernel.UUID

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		orders, total, err := h.orders.ListPaged(ctx, ports.OrderFilter{
			PageNumber: page,
			PageSize:   expiryPageSize,
			Status:     &status,
		})
		if err != nil {
			return nil, err
		}

		for _, o := range orders {
			if lastChangedAt(o).Before(cmd.Cutoff()) {
				candidates = append(candidates, o.ID())
			}
		}

		if len(orders) == 0 || int64(page*expiryPageSize) >= total {
			return candidates, nil
		}
	}
}
