package customerrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository. When db
// is a transaction handle from the unit of work, all operations run inside it.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer row. Customers register through another subsystem;
// inside this service Add exists for seeding and tests.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByReferralCode retrieves the customer owning a referral code.
func (r *GormCustomerRepository) GetByReferralCode(ctx context.Context, referralCode string) (*customer.Customer, error) {
	if referralCode == "" {
		return nil, errs.NewValueIsRequiredError("referralCode")
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).First(&dto, "referral_code = ?", referralCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("referral_code", referralCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateReferralCounters persists the aggregate's success count and reward
// countdown. Zero affected rows surface as an UpdateConflictError.
func (r *GormCustomerRepository) UpdateReferralCounters(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"referral_success_count": aggregate.ReferralSuccessCount(),
			"until_next_reward":      aggregate.UntilNextReward(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewUpdateConflictError("customer", aggregate.ID().String())
	}

	return nil
}
