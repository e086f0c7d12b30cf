package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// UpdateOrderPriceCommandHandler sets the final price of an order and obtains
// the matching payment link from the gateway.
//
// Price and link are written in one transaction: a gateway failure after the
// price write rolls everything back, so an order is never priced without a
// payment path. The payment request notification runs only after the commit.
type UpdateOrderPriceCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	notifier   ports.CustomerNotifier
	pricing    services.PricingPolicy
	logger     *slog.Logger
}

// NewUpdateOrderPriceCommandHandler creates a handler for the price operation.
func NewUpdateOrderPriceCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	notifier ports.CustomerNotifier,
	pricing services.PricingPolicy,
	logger *slog.Logger,
) UpdateOrderPriceCommandHandler {
	return UpdateOrderPriceCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
		pricing:    pricing,
		logger:     logger.With("component", "update_order_price"),
	}
}

// Handle prices the order and attaches a payment link, returning the link.
//
// Sequence inside one transaction: read the order, check ownership, resolve
// the price (supplied directly or computed from tariff and recorded weight),
// let the aggregate enforce the pricing rules (weight present, price not yet
// set, order unpaid and non-terminal), persist the price, re-read the joined
// order view, request a gateway link for it, persist the link, commit.
func (h UpdateOrderPriceCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderPriceCommand,
) (order.PaymentLink, error) {
	if err := cmd.Validate(); err != nil {
		return order.PaymentLink{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.PaymentLink{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.PaymentLink{}, err
	}

	if !ord.IsOwnedBy(cmd.ActorID()) {
		return order.PaymentLink{}, errs.NewNotAuthorizedError("order", cmd.ActorID().String())
	}

	price, err := h.resolvePrice(cmd, ord)
	if err != nil {
		return order.PaymentLink{}, err
	}

	if err = ord.AssignPrice(price); err != nil {
		return order.PaymentLink{}, err
	}

	if err = orderRepo.UpdatePrice(ctx, ord); err != nil {
		return order.PaymentLink{}, err
	}

	// The gateway request must reflect the priced row as the store sees it,
	// including the customer contact snapshot joined into the view.
	priced, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.PaymentLink{}, err
	}

	link, err := h.gateway.GeneratePaymentLink(ctx, priced)
	if err != nil {
		return order.PaymentLink{}, err
	}

	if err = priced.AttachPaymentLink(link); err != nil {
		return order.PaymentLink{}, err
	}

	if err = orderRepo.UpdatePaymentLink(ctx, priced); err != nil {
		return order.PaymentLink{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.PaymentLink{}, err
	}

	if err = h.notifier.SendPaymentRequest(ctx, priced, link); err != nil {
		h.logger.ErrorContext(ctx, "payment request notification failed",
			"order_id", priced.ID().String(), "error", err)
	}

	return link, nil
}

// resolvePrice chooses between the supplied price and one computed from the
// partner's tariff and the recorded weight.
func (h UpdateOrderPriceCommandHandler) resolvePrice(
	cmd UpdateOrderPriceCommand, ord *order.Order,
) (kernel.Money, error) {
	if !cmd.Price().IsZero() {
		return cmd.Price(), nil
	}

	return h.pricing.ComputePrice(ord.Weight().Grams(), cmd.TariffPerKg())
}
