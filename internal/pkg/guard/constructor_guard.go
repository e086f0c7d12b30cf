// Package guard provides a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The internal flag is only set when the object is
// created via NewConstructorGuard, so a zero-value struct fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was properly constructed.
// Returns validationError (or ErrDefaultConstructorGuard when nil is passed)
// for zero-value instances.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
