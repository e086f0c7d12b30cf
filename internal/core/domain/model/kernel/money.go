package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount in the smallest practical unit of
// the shop currency (whole rupiah). The zero value means "unset": an order
// whose price is zero Money has not been priced yet.
//
// Money is immutable. Arithmetic is performed on decimals to avoid binary
// floating point drift in financial values.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected with a ValueIsInvalidError.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MoneyFromInt creates a Money value from a whole number of currency units.
func MoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// ZeroMoney returns the unset amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is unset (or exactly zero).
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount using decimal's canonical representation.
func (m Money) String() string {
	return m.amount.String()
}

// Weight is a non-negative laundry weight in grams. The zero value means the
// order has not been weighed yet.
type Weight struct {
	grams decimal.Decimal
}

// NewWeight creates a Weight from a decimal number of grams.
// Negative weights are rejected with a ValueIsInvalidError.
func NewWeight(grams decimal.Decimal) (Weight, error) {
	if grams.IsNegative() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is negative", grams))
	}
	return Weight{grams: grams}, nil
}

// WeightFromInt creates a Weight from a whole number of grams.
func WeightFromInt(grams int64) (Weight, error) {
	return NewWeight(decimal.NewFromInt(grams))
}

// ZeroWeight returns the unset weight.
func ZeroWeight() Weight {
	return Weight{grams: decimal.Zero}
}

// Grams returns the underlying decimal value.
func (w Weight) Grams() decimal.Decimal {
	return w.grams
}

// IsZero reports whether the weight is unset.
func (w Weight) IsZero() bool {
	return w.grams.IsZero()
}

// IsEqual reports whether two weights are numerically equal.
func (w Weight) IsEqual(other Weight) bool {
	return w.grams.Equal(other.grams)
}

// String formats the weight in grams.
func (w Weight) String() string {
	return w.grams.String()
}
