package orderrepo

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// joinedOrderSelect is the read query shared by all aggregate loads. The
// customer contact snapshot rides along so the aggregate is complete without
// a second round trip.
const joinedOrderSelect = `
	SELECT
		o.*,
		c.name  AS customer_name,
		c.phone AS customer_phone,
		c.email AS customer_email
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
`

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. When db is a
// transaction handle from the unit of work, all operations run inside it.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order row. Orders are placed by the customer-facing
// subsystem; inside this service Add exists for seeding and tests.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves the joined order view by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto orderRowDTO
	result := r.db.WithContext(ctx).
		Raw(joinedOrderSelect+"WHERE o.id = ?", id.Bytes()).
		Scan(&dto)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return toDomain(dto)
}

// GetAllByPartner retrieves all orders owned by a laundry partner, newest
// first.
func (r *GormOrderRepository) GetAllByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []orderRowDTO
	err := r.db.WithContext(ctx).
		Raw(joinedOrderSelect+"WHERE o.partner_id = ? ORDER BY o.created_at DESC", partnerID.Bytes()).
		Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetUnpaidWithActiveLink retrieves unpaid orders holding a payment link that
// has not expired as of now.
func (r *GormOrderRepository) GetUnpaidWithActiveLink(ctx context.Context, now time.Time) ([]*order.Order, error) {
	var dtos []orderRowDTO
	err := r.db.WithContext(ctx).
		Raw(joinedOrderSelect+`
			WHERE o.payment_status = ?
			  AND o.payment_url <> ''
			  AND o.payment_expires_at > ?
			ORDER BY o.created_at`,
			int(order.PaymentUnpaid), now).
		Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateStatus persists the aggregate's status and weight in one update.
// Price and link columns are touched only on cancellation, which clears
// them; any other transition must leave a concurrently committed price
// and payment link intact.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	columns := map[string]any{
		"status":       int(aggregate.Status()),
		"weight_grams": aggregate.Weight().Grams(),
	}

	if aggregate.Status() == order.Cancelled {
		columns["price_after"] = aggregate.PriceAfter().Amount()
		columns["payment_url"] = paymentURL(aggregate)
		columns["payment_expires_at"] = paymentExpiry(aggregate)
	}

	return r.updateColumns(ctx, aggregate, columns)
}

// UpdatePrice persists the aggregate's final price.
func (r *GormOrderRepository) UpdatePrice(ctx context.Context, aggregate *order.Order) error {
	return r.updateColumns(ctx, aggregate, map[string]any{
		"price_after": aggregate.PriceAfter().Amount(),
	})
}

// UpdatePaymentLink persists the aggregate's payment link and expiry.
func (r *GormOrderRepository) UpdatePaymentLink(ctx context.Context, aggregate *order.Order) error {
	return r.updateColumns(ctx, aggregate, map[string]any{
		"payment_url":        paymentURL(aggregate),
		"payment_expires_at": paymentExpiry(aggregate),
	})
}

// UpdatePaymentStatus persists the aggregate's payment status.
func (r *GormOrderRepository) UpdatePaymentStatus(ctx context.Context, aggregate *order.Order) error {
	return r.updateColumns(ctx, aggregate, map[string]any{
		"payment_status": int(aggregate.PaymentStatus()),
	})
}

// updateColumns applies a guarded column-scoped update. Zero affected rows
// mean the row vanished or was concurrently mutated past the caller's
// precondition check, surfaced as an UpdateConflictError.
func (r *GormOrderRepository) updateColumns(
	ctx context.Context, aggregate *order.Order, columns map[string]any,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewUpdateConflictError("order", aggregate.ID().String())
	}

	return nil
}

func paymentURL(aggregate *order.Order) string {
	if link := aggregate.PaymentLink(); link != nil {
		return link.URL()
	}
	return ""
}

func paymentExpiry(aggregate *order.Order) *time.Time {
	if link := aggregate.PaymentLink(); link != nil {
		t := link.ExpiresAt()
		return &t
	}
	return nil
}

func toDomainSlice(dtos []orderRowDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
