package services

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// gramsPerKilogram converts the stored gram weight to the per-kilogram tariff
// unit.
var gramsPerKilogram = decimal.NewFromInt(1000)

// PricingPolicy is a pure domain service computing order prices from weight
// and the partner's tariff. It holds no state and causes no side effects, so
// the same inputs always produce the same price.
//
// Example:
//
//	policy := services.NewPricingPolicy()
//	price, err := policy.ComputePrice(decimal.NewFromInt(5000), decimal.NewFromInt(10000))
//	// price = 50000 for 5kg at 10000/kg
type PricingPolicy struct{}

// NewPricingPolicy creates a PricingPolicy instance.
func NewPricingPolicy() PricingPolicy {
	return PricingPolicy{}
}

// ComputePrice calculates the price for weightGrams of laundry at
// tariffPerKg currency units per kilogram, rounded to whole currency units.
//
// Returns a ValueIsInvalidError when the weight or tariff is negative.
func (PricingPolicy) ComputePrice(weightGrams decimal.Decimal, tariffPerKg decimal.Decimal) (kernel.Money, error) {
	if weightGrams.IsNegative() {
		return kernel.ZeroMoney(), errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is negative", weightGrams))
	}
	if tariffPerKg.IsNegative() {
		return kernel.ZeroMoney(), errs.NewValueIsInvalidErrorWithCause("tariff",
			fmt.Errorf("%s is negative", tariffPerKg))
	}

	amount := weightGrams.Mul(tariffPerKg).Div(gramsPerKilogram).Round(0)
	return kernel.NewMoney(amount)
}
