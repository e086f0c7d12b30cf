package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a laundry partner's request to advance
// an order through its lifecycle, optionally recording the weighed laundry in
// the same mutation.
//
// The actor is the verified identity of the caller; the handler rejects the
// command when the actor does not own the order.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	status  order.Status
	weight  kernel.Weight

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move an order to the
// target status. A zero weight keeps the order's recorded weight.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	status order.Status,
	weight kernel.Weight,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mutate.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the verified identity of the requesting partner.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Weight returns the weighed laundry; zero means "keep the recorded value".
func (c UpdateOrderStatusCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
