// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so aggregates and value objects can enforce creation through
// their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value of the guard fails validation, which is how improperly
// initialized domain objects are detected.
//
// Example:
//
//	type Money struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int) Money {
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
