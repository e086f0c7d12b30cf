// Package customerrepo persists the referral-relevant slice of customer
// records with GORM. The referral pipeline is its only writer; account
// registration and profile CRUD belong to another subsystem.
package customerrepo

import (
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"uniqueIndex"`
	Name  string
	Phone string

	ReferralCode         string `gorm:"uniqueIndex"`
	ReferralSuccessCount int
	UntilNextReward      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:                   aggregate.ID().Bytes(),
		Email:                aggregate.Email(),
		Name:                 aggregate.Name(),
		Phone:                aggregate.Phone(),
		ReferralCode:         aggregate.ReferralCode(),
		ReferralSuccessCount: aggregate.ReferralSuccessCount(),
		UntilNextReward:      aggregate.UntilNextReward(),
	}
}

// toDomain converts a database DTO to a customer aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Email,
		dto.Name,
		dto.Phone,
		dto.ReferralCode,
		dto.ReferralSuccessCount,
		dto.UntilNextReward,
	)
}
