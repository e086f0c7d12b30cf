package commands

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// SyncPaymentsCommandHandler reconciles pending payments with the gateway.
//
// Candidates are read in a short transaction; each gateway check and paid
// transition then runs independently, so one misbehaving order or gateway
// hiccup does not block the rest of the batch.
type SyncPaymentsCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	markPaid   MarkOrderPaidCommandHandler
	logger     *slog.Logger
}

// NewSyncPaymentsCommandHandler creates a handler for the payment sync batch.
func NewSyncPaymentsCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	markPaid MarkOrderPaidCommandHandler,
	logger *slog.Logger,
) SyncPaymentsCommandHandler {
	return SyncPaymentsCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		markPaid:   markPaid,
		logger:     logger.With("component", "sync_payments"),
	}
}

// Handle processes the payment reconciliation batch. Orders the gateway
// reports as paid are transitioned through the regular paid command, keeping
// the aggregate's repeat-confirmation guard in the path.
func (h SyncPaymentsCommandHandler) Handle(ctx context.Context, cmd SyncPaymentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidates, err := h.pendingOrders(ctx)
	if err != nil {
		return err
	}

	for _, ord := range candidates {
		if syncErr := h.syncOrder(ctx, ord); syncErr != nil {
			h.logger.ErrorContext(ctx, "payment sync failed for order",
				"order_id", ord.ID().String(), "error", syncErr)
		}
	}

	return nil
}

// pendingOrders reads the unpaid orders whose payment link is still active.
func (h SyncPaymentsCommandHandler) pendingOrders(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.OrderRepository().GetUnpaidWithActiveLink(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (h SyncPaymentsCommandHandler) syncOrder(ctx context.Context, ord *order.Order) error {
	status, err := h.gateway.GetPaymentStatus(ctx, ord.ID())
	if err != nil {
		return err
	}

	if status != order.PaymentPaid {
		return nil
	}

	cmd, err := NewMarkOrderPaidCommand(ord.ID())
	if err != nil {
		return err
	}

	return h.markPaid.Handle(ctx, cmd)
}
