package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// PaymentGateway is the outbound contract to the external payment provider.
//
// GeneratePaymentLink is called mid-transaction during the price operation,
// so implementations must not require an early commit; a failure is surfaced
// as a PaymentGatewayError and rolls the whole pricing transaction back —
// the order is never left with a price but no payment path.
type PaymentGateway interface {
	// GeneratePaymentLink creates a checkout link for the order's final
	// price, carrying the configured expiry.
	GeneratePaymentLink(ctx context.Context, aggregate *order.Order) (order.PaymentLink, error)

	// GetPaymentStatus reports the provider-side payment state for an order.
	GetPaymentStatus(ctx context.Context, orderID kernel.UUID) (order.PaymentStatus, error)
}
