package ports

import (
	"context"

	"laundry/internal/core/domain/model/customer"
)

// RewardGranter delivers the referral reward to a customer whose countdown
// reached zero. The external effect is safe only under the referral
// pipeline's own guard: the pipeline runs at most once per order completion,
// enforced by the terminal-state transition.
type RewardGranter interface {
	GrantReward(ctx context.Context, aggregate *customer.Customer) error
}
