package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPriceImmutable is returned when a price rewrite is attempted on an
	// order whose price has already been assigned. Price is written at most
	// once per order and only a cancellation clears it.
	ErrPriceImmutable = errors.New("price can no longer be changed once assigned")
)

// Contact is the customer contact snapshot carried on the joined order view.
// It is what the notification dispatcher needs to reach the customer.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// Order is the aggregate root for a laundry service request. It tracks the
// order from placement through weighing, pricing, payment, and completion.
//
// Order maintains these invariants:
//   - identity, owning partner, and customer are valid UUIDs
//   - status transitions follow the Status state machine; terminal states
//     (Completed, Cancelled) accept no further mutation
//   - completion requires weight, price, and a confirmed payment, checked in
//     that precedence
//   - priceAfter is written at most once; only cancellation clears it
//   - a payment link can only exist for a priced order
//
// The struct uses private fields so every mutation goes through a validated
// method. The aggregate holds no cross-invocation state: repositories load
// the current row, the caller mutates, and the result is written back within
// one transaction.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// partnerID identifies the laundry partner that owns the order
	partnerID kernel.UUID

	// customerID identifies the customer the order belongs to
	customerID kernel.UUID

	// contact is the customer contact snapshot from the joined view
	contact Contact

	// referralCode references the referring customer; empty means none
	referralCode string

	// status is the current state in the order lifecycle
	status Status

	// paymentStatus tracks payment confirmation from the gateway
	paymentStatus PaymentStatus

	// weight is the laundered weight; zero until the partner weighs it
	weight kernel.Weight

	// priceBefore is the estimated price quoted at placement
	priceBefore kernel.Money

	// priceAfter is the final price; zero until assigned, immutable after
	priceAfter kernel.Money

	// paymentLink is the active gateway link, nil until pricing completes
	paymentLink *PaymentLink

	// isConstructed ensures the order came through a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed order in Created status with no weight,
// no final price, and payment pending. The referral code may be empty.
func NewOrder(
	id kernel.UUID,
	partnerID kernel.UUID,
	customerID kernel.UUID,
	contact Contact,
	referralCode string,
) (*Order, error) {
	return RestoreOrder(
		id, partnerID, customerID, contact, referralCode,
		Created, PaymentUnpaid,
		kernel.ZeroWeight(), kernel.ZeroMoney(), kernel.ZeroMoney(), nil,
	)
}

// RestoreOrder reconstructs an order from persistence. All identity and
// status fields are validated so corrupted rows surface immediately instead
// of flowing through the state machine.
func RestoreOrder(
	id kernel.UUID,
	partnerID kernel.UUID,
	customerID kernel.UUID,
	contact Contact,
	referralCode string,
	status Status,
	paymentStatus PaymentStatus,
	weight kernel.Weight,
	priceBefore kernel.Money,
	priceAfter kernel.Money,
	paymentLink *PaymentLink,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		partnerID.Validate(),
		customerID.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		partnerID:     partnerID,
		customerID:    customerID,
		contact:       contact,
		referralCode:  referralCode,
		status:        status,
		paymentStatus: paymentStatus,
		weight:        weight,
		priceBefore:   priceBefore,
		priceAfter:    priceAfter,
		paymentLink:   paymentLink,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PartnerID returns the owning laundry partner's identifier.
func (o *Order) PartnerID() kernel.UUID {
	return o.partnerID
}

// CustomerID returns the customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Contact returns the customer contact snapshot.
func (o *Order) Contact() Contact {
	return o.contact
}

// ReferralCode returns the referring customer's code, or "" when the order
// was placed without one.
func (o *Order) ReferralCode() string {
	return o.referralCode
}

// HasReferral reports whether the order carries a referral code.
func (o *Order) HasReferral() bool {
	return o.referralCode != ""
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Weight returns the laundered weight; zero until weighed.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// PriceBefore returns the estimate quoted at placement.
func (o *Order) PriceBefore() kernel.Money {
	return o.priceBefore
}

// PriceAfter returns the final price; zero until assigned.
func (o *Order) PriceAfter() kernel.Money {
	return o.priceAfter
}

// PaymentLink returns the active gateway link, or nil when none is stored.
func (o *Order) PaymentLink() *PaymentLink {
	return o.paymentLink
}

// IsOwnedBy reports whether the given laundry partner owns this order.
func (o *Order) IsOwnedBy(partnerID kernel.UUID) bool {
	return o.partnerID.IsEqual(partnerID)
}

// ChangeStatus transitions the order to the target status, optionally
// updating the weight in the same mutation. A zero weight keeps the value
// already recorded.
//
// Business rules:
//   - terminal orders reject any transition
//   - Completed additionally requires, in this precedence: a non-zero weight,
//     a non-zero final price, and a confirmed payment; each violation is a
//     ValueIsRequiredError naming the missing field. The checks run against
//     the order as read, so a weight supplied in the same request cannot
//     satisfy the weight requirement
//   - Cancelled clears the final price and the stored payment link, making
//     the order re-priceable if it is ever restored (it is not, Cancelled is
//     terminal; the clear keeps the row consistent with "no payment path")
func (o *Order) ChangeStatus(target Status, weight kernel.Weight) error {
	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	if newStatus == Completed {
		if err := o.validateCompletion(); err != nil {
			return err
		}
	}

	if !weight.IsZero() {
		o.weight = weight
	}

	if newStatus == Cancelled {
		o.priceAfter = kernel.ZeroMoney()
		o.paymentLink = nil
	}

	o.status = newStatus
	return nil
}

// validateCompletion enforces the Completed preconditions in the documented
// precedence: weight, then price, then payment.
func (o *Order) validateCompletion() error {
	if o.weight.IsZero() {
		return errs.NewValueIsRequiredError("weight")
	}
	if o.priceAfter.IsZero() {
		return errs.NewValueIsRequiredError("price")
	}
	if o.paymentStatus != PaymentPaid {
		return errs.NewValueIsRequiredError("payment")
	}
	return nil
}

// AssignPrice sets the final price for the order.
//
// Business rules, checked against the current state in this order:
//   - the order must already be weighed (ValueIsRequiredError "weight")
//   - the price must not have been assigned before (ErrPriceImmutable)
//   - the customer must not have paid yet
//   - the order must not be terminal
//   - the new price itself must be non-zero
func (o *Order) AssignPrice(price kernel.Money) error {
	if o.weight.IsZero() {
		return errs.NewValueIsRequiredError("weight")
	}

	if !o.priceAfter.IsZero() {
		return ErrPriceImmutable
	}

	if o.paymentStatus == PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("status_payment",
			errors.New("order is already paid"))
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order status is already %s", o.status.String()))
	}

	if price.IsZero() {
		return errs.NewValueIsRequiredError("price")
	}

	o.priceAfter = price
	return nil
}

// AttachPaymentLink stores a freshly generated gateway link on the order,
// superseding any previous one. The order must be priced first.
func (o *Order) AttachPaymentLink(link PaymentLink) error {
	if o.priceAfter.IsZero() {
		return errs.NewValueIsRequiredError("price")
	}

	o.paymentLink = &link
	return nil
}

// MarkPaid records payment confirmation from the gateway.
// Terminal and already-paid orders reject the mutation.
func (o *Order) MarkPaid() error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order status is already %s", o.status.String()))
	}

	if o.paymentStatus == PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("status_payment",
			errors.New("order is already paid"))
	}

	o.paymentStatus = PaymentPaid
	return nil
}
