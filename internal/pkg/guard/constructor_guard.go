// Package guard provides a defensive construction pattern for domain objects.
// Value objects, commands, and queries embed a ConstructorGuard so that
// zero-value instances can be detected and rejected before use.
package guard

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by Validate
// when a nil validation error is supplied. It guarantees that validation
// of an unconstructed object always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. Embedding a guard in a struct makes zero-value
// instances distinguishable from properly constructed ones, which keeps
// domain invariants enforceable: a struct literal bypassing the constructor
// fails validation on first use.
//
// Example:
//
//	type Pincode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPincode(raw string) (Pincode, error) {
//	    // ... validate raw ...
//	    return Pincode{value: raw, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Pincode) Validate() error {
//	    return p.guard.Validate(ErrPincodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call it only inside constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
