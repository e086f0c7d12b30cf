package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand records a confirmed gateway payment against an order.
// It carries no actor: the caller is the payment sync, acting on behalf of
// the gateway, not a partner.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to mark an order as paid.
func NewMarkOrderPaidCommand(orderID kernel.UUID) (MarkOrderPaidCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return MarkOrderPaidCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the paid order.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}
