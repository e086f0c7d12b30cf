package queries

import (
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// OrderResponse is the read-model row shared by the order queries: the order
// columns joined with the customer contact snapshot, with statuses already
// rendered as their wire names.
type OrderResponse struct {
	ID            kernel.UUID
	CustomerName  string
	CustomerPhone string
	Status        string
	PaymentStatus string
	WeightGrams   decimal.Decimal
	PriceBefore   decimal.Decimal
	PriceAfter    decimal.Decimal
	PaymentURL    string
	PaymentExpiry *time.Time
	CreatedAt     time.Time
}
