package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPartnerOrdersQueryHandler lists a partner's orders from the database.
type GetPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerOrdersQueryHandler creates a handler for partner order lists.
func NewGetPartnerOrdersQueryHandler(db *gorm.DB) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first; a partner with
// no orders gets an empty slice, not an error.
func (h GetPartnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.partner_id,
			c.name,
			c.phone,
			o.status,
			o.payment_status,
			o.weight_grams,
			o.price_before,
			o.price_after,
			o.payment_url,
			o.payment_expires_at,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.partner_id = ?
		ORDER BY o.created_at DESC
	`, query.PartnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, _, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
