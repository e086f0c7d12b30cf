// Package orderrepo persists order aggregates with GORM. The read side joins
// the customer contact snapshot into the aggregate; the write side is
// column-scoped so concurrent operations on different aspects of an order do
// not clobber each other.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	ReferralCode string

	Status        int `gorm:"index"`
	PaymentStatus int

	WeightGrams decimal.Decimal `gorm:"type:numeric"`
	PriceBefore decimal.Decimal `gorm:"type:numeric"`
	PriceAfter  decimal.Decimal `gorm:"type:numeric"`

	PaymentURL       string
	PaymentExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// orderRowDTO is the joined read model: the order row plus the customer
// contact columns needed to restore the full aggregate.
type orderRowDTO struct {
	OrderDTO
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		PartnerID:     aggregate.PartnerID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		ReferralCode:  aggregate.ReferralCode(),
		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		WeightGrams:   aggregate.Weight().Grams(),
		PriceBefore:   aggregate.PriceBefore().Amount(),
		PriceAfter:    aggregate.PriceAfter().Amount(),
	}

	if link := aggregate.PaymentLink(); link != nil {
		expiresAt := link.ExpiresAt()
		dto.PaymentURL = link.URL()
		dto.PaymentExpiresAt = &expiresAt
	}

	return dto
}

// toDomain converts a joined database row to an order aggregate using
// RestoreOrder, so corrupted rows fail loudly instead of flowing through the
// state machine.
func toDomain(dto orderRowDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.WeightGrams)
	if err != nil {
		return nil, err
	}

	priceBefore, err := kernel.NewMoney(dto.PriceBefore)
	if err != nil {
		return nil, err
	}

	priceAfter, err := kernel.NewMoney(dto.PriceAfter)
	if err != nil {
		return nil, err
	}

	var link *order.PaymentLink
	if dto.PaymentURL != "" && dto.PaymentExpiresAt != nil {
		l, linkErr := order.NewPaymentLink(dto.PaymentURL, *dto.PaymentExpiresAt)
		if linkErr != nil {
			return nil, linkErr
		}
		link = &l
	}

	return order.RestoreOrder(
		id,
		partnerID,
		customerID,
		order.Contact{
			Name:  dto.CustomerName,
			Phone: dto.CustomerPhone,
			Email: dto.CustomerEmail,
		},
		dto.ReferralCode,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		weight,
		priceBefore,
		priceAfter,
		link,
	)
}
