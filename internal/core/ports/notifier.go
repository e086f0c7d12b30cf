package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// CustomerNotifier sends asynchronous messages to customers. Dispatch is
// fire-and-forget from the core's perspective: failures are logged by the
// caller, never propagated as operation failures, because the state change
// they describe has already committed.
type CustomerNotifier interface {
	// SendOrderCompleted tells the customer their order is done.
	SendOrderCompleted(ctx context.Context, phone string, name string, orderID kernel.UUID) error

	// SendPaymentRequest sends the customer the payment link for a freshly
	// priced order.
	SendPaymentRequest(ctx context.Context, aggregate *order.Order, link order.PaymentLink) error
}
