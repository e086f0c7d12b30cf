package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler drives the order status state machine.
//
// The handler validates preconditions against the stored row, persists the
// transition transactionally, and — only after the commit — dispatches the
// non-transactional side effects of completion: the customer notification and
// the referral reward pipeline. A side-effect failure is logged and never
// rolls back the already-committed status change.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.CustomerNotifier
	referral   *ReferralRewardPipeline
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.CustomerNotifier,
	referral *ReferralRewardPipeline,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		referral:   referral,
		logger:     logger.With("component", "update_order_status"),
	}
}

// Handle processes the status transition.
//
// Sequence: read the order, check ownership, let the aggregate validate and
// apply the transition (terminal guard, completion preconditions), write
// status and weight in one guarded update, commit. Zero affected rows surface
// as an UpdateConflictError; the caller must re-fetch and retry, this layer
// does not retry automatically.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if !ord.IsOwnedBy(cmd.ActorID()) {
		return errs.NewNotAuthorizedError("order", cmd.ActorID().String())
	}

	if err = ord.ChangeStatus(cmd.Status(), cmd.Weight()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if ord.Status() == order.Completed {
		h.dispatchCompletionEffects(ctx, ord)
	}

	return nil
}

// dispatchCompletionEffects runs the post-commit side effects of completion.
// The terminal-state guard makes this reachable at most once per order, which
// is the referral pipeline's idempotency boundary.
func (h UpdateOrderStatusCommandHandler) dispatchCompletionEffects(ctx context.Context, ord *order.Order) {
	contact := ord.Contact()
	if err := h.notifier.SendOrderCompleted(ctx, contact.Phone, contact.Name, ord.ID()); err != nil {
		h.logger.ErrorContext(ctx, "completion notification failed",
			"order_id", ord.ID().String(), "error", err)
	}

	if !ord.HasReferral() {
		return
	}

	if err := h.referral.Run(ctx, ord.ReferralCode()); err != nil {
		h.logger.ErrorContext(ctx, "referral reward pipeline failed",
			"order_id", ord.ID().String(), "referral_code", ord.ReferralCode(), "error", err)
	}
}
