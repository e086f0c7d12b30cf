package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Every concrete error type in this package unwraps to one of these.
var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrUpdateConflict  = errors.New("update conflict")
	ErrPaymentGateway  = errors.New("payment gateway failure")
)

// sanitize strips newlines from values embedded in error messages so a single
// log line never spans multiple lines.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its
// identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause (e.g. a database error).
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value violates a validation
// rule or an object is in a state that forbids the requested operation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// rule that was violated.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value or precondition field
// is missing. ParamName carries the name of the missing field so callers can
// report exactly what must be supplied first.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// NotAuthorizedError indicates an ownership mismatch: the acting identity is
// not permitted to operate on the addressed resource.
type NotAuthorizedError struct {
	Resource string
	ActorID  string
}

// NewNotAuthorizedError creates a NotAuthorizedError for the given resource
// and acting identity.
func NewNotAuthorizedError(resource string, actorID string) *NotAuthorizedError {
	return &NotAuthorizedError{Resource: resource, ActorID: actorID}
}

func (e *NotAuthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: actor is: %s, resource is: %s",
		ErrNotAuthorized, e.ActorID, e.Resource))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// UpdateConflictError indicates that a guarded write affected zero rows:
// the row vanished or was concurrently mutated past the precondition check.
// The operation is not retried internally; callers must re-fetch and decide.
type UpdateConflictError struct {
	ParamName string
	ID        any
}

// NewUpdateConflictError creates an UpdateConflictError for the given entity
// name and identifier.
func NewUpdateConflictError(paramName string, id any) *UpdateConflictError {
	return &UpdateConflictError{ParamName: paramName, ID: id}
}

func (e *UpdateConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrUpdateConflict, e.ParamName, e.ID))
}

func (e *UpdateConflictError) Unwrap() error {
	return ErrUpdateConflict
}

// PaymentGatewayError indicates that the external payment gateway rejected or
// timed out a request. Inside a pricing transaction this error is fatal to the
// whole transaction.
type PaymentGatewayError struct {
	Op    string
	Cause error
}

// NewPaymentGatewayError creates a PaymentGatewayError for the failed gateway
// operation.
func NewPaymentGatewayError(op string, cause error) *PaymentGatewayError {
	return &PaymentGatewayError{Op: op, Cause: cause}
}

func (e *PaymentGatewayError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPaymentGateway, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPaymentGateway, e.Op))
}

func (e *PaymentGatewayError) Unwrap() error {
	return ErrPaymentGateway
}
