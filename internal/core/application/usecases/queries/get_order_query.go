package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its customer contact snapshot.
// The actor must be the laundry partner owning the order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, actorID)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order on behalf of a partner.
func NewGetOrderQuery(orderID kernel.UUID, actorID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the verified identity of the requesting partner.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}
