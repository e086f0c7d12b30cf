package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its customer join directly from
// the database, bypassing the aggregate. Ownership is still enforced: a
// partner asking for another partner's order gets a NotAuthorizedError, not
// a not-found, so a misconfigured client is distinguishable from a bad id.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the joined order view.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	resp, partnerID, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	if !partnerID.IsEqual(query.ActorID()) {
		return OrderResponse{}, errs.NewNotAuthorizedError("order", query.ActorID().String())
	}

	return resp, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow maps one joined order row into the response, returning the
// owning partner id separately for the authorization check.
func scanOrderRow(row rowScanner) (OrderResponse, kernel.UUID, error) {
	var (
		resp      OrderResponse
		id        uuid.UUID
		partnerID uuid.UUID
		status    int
		payStatus int
		weight    decimal.Decimal
		before    decimal.Decimal
		after     decimal.Decimal
		url       sql.NullString
		expiresAt sql.NullTime
	)

	err := row.Scan(
		&id,
		&partnerID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&status,
		&payStatus,
		&weight,
		&before,
		&after,
		&url,
		&expiresAt,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, kernel.UUID{}, err
	}

	owner, err := kernel.UUIDFromBytes(partnerID[:])
	if err != nil {
		return OrderResponse{}, kernel.UUID{}, err
	}

	resp.ID = orderID
	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(payStatus).String()
	resp.WeightGrams = weight
	resp.PriceBefore = before
	resp.PriceAfter = after
	resp.PaymentURL = url.String
	if expiresAt.Valid {
		t := expiresAt.Time
		resp.PaymentExpiry = &t
	}

	return resp, owner, nil
}
