package commands

import (
	"context"
)

// MarkOrderPaidCommandHandler persists a gateway-confirmed payment.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderPaidCommandHandler creates a handler for payment confirmations.
func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{uowFactory: uowFactory}
}

// Handle reads the order, applies the paid transition, and persists the
// payment status. Marking an already-paid or terminal order fails in the
// aggregate, so a repeated confirmation is rejected rather than re-applied.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.MarkPaid(); err != nil {
		return err
	}

	if err = orderRepo.UpdatePaymentStatus(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
