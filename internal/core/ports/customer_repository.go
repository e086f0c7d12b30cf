package ports

import (
	"context"

	"laundry/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for the
// referral-relevant customer slice. The referral pipeline is its only writer.
type CustomerRepository interface {
	// GetByReferralCode retrieves the customer owning a referral code.
	// Returns an ObjectNotFoundError when the code matches nobody.
	GetByReferralCode(ctx context.Context, referralCode string) (*customer.Customer, error)

	// UpdateReferralCounters persists the aggregate's success count and
	// reward countdown. Zero affected rows fail with an UpdateConflictError.
	UpdateReferralCounters(ctx context.Context, aggregate *customer.Customer) error
}
