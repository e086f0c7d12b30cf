package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
	"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
)

// GetPartnerOrdersQuery retrieves all orders owned by one laundry partner,
// newest first. The partner id comes from the verified actor identity, so the
// result set is scoped by construction.
type GetPartnerOrdersQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates a query for a partner's order list.
func NewGetPartnerOrdersQuery(partnerID kernel.UUID) (GetPartnerOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerOrdersQuery{}, err
	}

	return GetPartnerOrdersQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// PartnerID returns the laundry partner whose orders are requested.
func (q GetPartnerOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}
