// Package guard provides a defensive construction pattern for commands,
// queries, and value objects: embedding a ConstructorGuard in a struct makes
// zero-value instances distinguishable from instances built through their
// designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard keeps an internal flag that is only set
// when the object is created through the proper constructor; any zero-value
// struct fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was built through its
// constructor. Returns validationError (or ErrDefaultConstructorGuard when
// validationError is nil) for zero-value instances, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
