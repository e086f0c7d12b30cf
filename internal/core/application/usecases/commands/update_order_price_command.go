package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateOrderPriceCommandIsNotConstructed = errors.New(
	"UpdateOrderPriceCommand must be created via NewUpdateOrderPriceCommand constructor",
)

// UpdateOrderPriceCommand represents a laundry partner's request to set the
// final price of a weighed order. The price can be supplied directly, or
// derived by the handler from the partner's per-kilogram tariff and the
// order's recorded weight.
type UpdateOrderPriceCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actorID     kernel.UUID
	price       kernel.Money
	tariffPerKg decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateOrderPriceCommand creates a command to price an order. Exactly one
// of price and tariffPerKg must be non-zero: a non-zero price is used as-is,
// a non-zero tariff asks the handler to compute the price from the weight.
func NewUpdateOrderPriceCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	price kernel.Money,
	tariffPerKg decimal.Decimal,
) (UpdateOrderPriceCommand, error) {
	cmd := UpdateOrderPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setPricing(price, tariffPerKg),
	); err != nil {
		return UpdateOrderPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderPriceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to price.
func (c UpdateOrderPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the verified identity of the requesting partner.
func (c UpdateOrderPriceCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Price returns the directly supplied price; zero means "derive from tariff".
func (c UpdateOrderPriceCommand) Price() kernel.Money {
	return c.price
}

// TariffPerKg returns the per-kilogram tariff; zero means "price supplied".
func (c UpdateOrderPriceCommand) TariffPerKg() decimal.Decimal {
	return c.tariffPerKg
}

func (c *UpdateOrderPriceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderPriceCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateOrderPriceCommand) setPricing(price kernel.Money, tariffPerKg decimal.Decimal) error {
	if tariffPerKg.IsNegative() {
		return errs.NewValueIsInvalidError("tariffPerKg")
	}
	if price.IsZero() == tariffPerKg.IsZero() {
		return errs.NewValueIsRequiredError("price or tariffPerKg")
	}

	c.price = price
	c.tariffPerKg = tariffPerKg
	return nil
}
