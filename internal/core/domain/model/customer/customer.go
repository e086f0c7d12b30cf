package customer

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer")

// Customer carries the referral-relevant slice of a customer record. Account
// registration and profile CRUD live in another subsystem; this aggregate
// only mutates the two referral counters, as a side effect of a referred
// order reaching completion.
//
// Counter semantics:
//   - referralSuccessCount increases by exactly one per completed referred
//     order and never decreases
//   - untilNextReward counts down from the configured threshold; when it hits
//     zero a reward is due and the countdown is reset
type Customer struct {
	id           kernel.UUID
	email        string
	name         string
	phone        string
	referralCode string

	referralSuccessCount int
	untilNextReward      int

	isConstructed bool
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	email string,
	name string,
	phone string,
	referralCode string,
	referralSuccessCount int,
	untilNextReward int,
) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if referralSuccessCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("referral_code_success_count",
			fmt.Errorf("%d is negative", referralSuccessCount))
	}

	return &Customer{
		id:                   id,
		email:                email,
		name:                 name,
		phone:                phone,
		referralCode:         referralCode,
		referralSuccessCount: referralSuccessCount,
		untilNextReward:      untilNextReward,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// ReferralCode returns the customer's own referral code, or "" when none has
// been issued.
func (c *Customer) ReferralCode() string {
	return c.referralCode
}

// ReferralSuccessCount returns how many referred orders have completed.
func (c *Customer) ReferralSuccessCount() int {
	return c.referralSuccessCount
}

// UntilNextReward returns how many further completions are needed before the
// next reward fires.
func (c *Customer) UntilNextReward() int {
	return c.untilNextReward
}

// RecordReferralSuccess applies one completed referred order to the counters:
// the success count goes up by one, the reward countdown goes down by one.
// Returns true when the countdown reached zero and a reward is now due; the
// caller grants the reward and resets the countdown.
func (c *Customer) RecordReferralSuccess() bool {
	c.referralSuccessCount++
	c.untilNextReward--
	return c.untilNextReward <= 0
}

// ResetRewardCountdown restarts the countdown after a reward was granted.
// The threshold must be positive.
func (c *Customer) ResetRewardCountdown(threshold int) error {
	if threshold <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("reward threshold",
			fmt.Errorf("%d is not greater than 0", threshold))
	}

	c.untilNextReward = threshold
	return nil
}
