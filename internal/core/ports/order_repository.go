package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Reads return the joined order view (including the customer contact
// snapshot); writes are column-scoped so concurrent operations on different
// aspects of an order do not clobber each other.
//
// All methods participate in the surrounding UnitOfWork transaction when one
// is active. Guarded updates that affect zero rows fail with an
// UpdateConflictError: the row vanished or was concurrently mutated past the
// caller's precondition check. The repository never retries; serialization of
// concurrent writers on one order id is the store's row-level locking.
type OrderRepository interface {
	// Get retrieves an order by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByPartner retrieves all orders owned by a laundry partner,
	// newest first.
	GetAllByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)

	// GetUnpaidWithActiveLink retrieves orders that hold a payment link
	// which has not expired as of now and are still unpaid. Used by the
	// payment status sync.
	GetUnpaidWithActiveLink(ctx context.Context, now time.Time) ([]*order.Order, error)

	// UpdateStatus persists the aggregate's status and weight in one update.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// UpdatePrice persists the aggregate's final price.
	UpdatePrice(ctx context.Context, aggregate *order.Order) error

	// UpdatePaymentLink persists the aggregate's payment link and expiry.
	UpdatePaymentLink(ctx context.Context, aggregate *order.Order) error

	// UpdatePaymentStatus persists the aggregate's payment status.
	UpdatePaymentStatus(ctx context.Context, aggregate *order.Order) error
}
