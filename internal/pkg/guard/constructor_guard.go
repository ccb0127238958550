// Package guard provides the constructor-guard pattern used to ensure
// that commands, queries, and value objects are only created through
// their designated constructor functions.
//
// A zero-value struct embedding a ConstructorGuard fails validation,
// which lets handlers reject objects that bypassed construction-time
// invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error, so that validation
// always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in
// a struct and set it via NewConstructorGuard inside the constructor;
// any zero-value instance of the struct will then fail Validate.
//
// Example usage:
//
//	type AdvanceOrderCommand struct {
//	    orderID kernel.OrderID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAdvanceOrderCommand(orderID kernel.OrderID) (AdvanceOrderCommand, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return AdvanceOrderCommand{}, err
//	    }
//	    return AdvanceOrderCommand{
//	        orderID: orderID,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c AdvanceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was created through its
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
