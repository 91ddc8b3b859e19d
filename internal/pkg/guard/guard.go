// Package guard provides the ConstructorGuard defensive-programming pattern
// used by domain objects and commands to reject zero-value instances that
// bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been created through its designated
// constructor. Embedding a ConstructorGuard and checking it in Validate prevents
// accidental use of zero-value domain objects.
//
// Example usage:
//
//	var ErrPackageNotConstructed = errors.New("Package must be created via NewPackage")
//
//	type Package struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPackage(id kernel.UUID) (*Package, error) {
//	    return &Package{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p *Package) Validate() error {
//	    return p.guard.Validate(ErrPackageNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it inside the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. For a zero-value guard it returns validationError, or
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
