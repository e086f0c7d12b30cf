package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Processing ──> Delivering ──┬──> Completed
//	    │            │             │        │
//	    └────────────┴─────────────┴────────┴──> Cancelled
//
// Completed and Cancelled are terminal: once an order reaches either state
// no further transition is accepted. Non-terminal states may move freely
// between each other as the partner progresses (or corrects) the order.
//
// Status is a value object that validates transitions and provides the
// Indonesian wire representation used by the original store and API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status after order placement, before the
	// partner has picked the laundry up.
	Created

	// Processing indicates the laundry is at the partner being washed.
	Processing

	// Delivering indicates the finished laundry is on its way back to the
	// customer.
	Delivering

	// Completed ("selesai") is the terminal success state. Entering it
	// requires weight, price, and payment to be settled.
	Completed

	// Cancelled ("batal") is the terminal failure state. Entering it clears
	// any assigned price and payment link.
	Cancelled
)

// getStatusStrings returns the wire representation for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Created:    "baru",
		Processing: "diproses",
		Delivering: "diantar",
		Completed:  "selesai",
		Cancelled:  "batal",
	}
}

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "baru",
		Processing: "diproses",
		Delivering: "diantar",
		Completed:  "selesai",
		Cancelled:  "batal",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unrecognized input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the defined states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Transition validates a move from the current status to the target one.
//
// Returns:
//   - (target, nil) when the transition is allowed
//   - (0, error) when the target is invalid or the current status is terminal
//
// Completion preconditions (weight, price, payment) are enforced by the Order
// aggregate, not here; this method only guards the shape of the machine.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order status is already %s", s.String()))
	}

	return target, nil
}

// PaymentStatus tracks whether the customer has paid for an order.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid ("belum bayar") is the initial payment state.
	PaymentUnpaid

	// PaymentPaid ("sudah bayar") indicates the payment gateway has
	// confirmed the payment.
	PaymentPaid
)

// getPaymentStatusStrings returns the wire representation for every
// PaymentStatus value.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		PaymentUnpaid:  "belum bayar",
		PaymentPaid:    "sudah bayar",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("status_payment",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the PaymentStatus is one of the defined states.
func (p PaymentStatus) Validate() error {
	if p != PaymentUnpaid && p != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("status_payment",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
