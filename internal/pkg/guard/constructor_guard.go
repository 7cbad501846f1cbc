// Package guard provides the constructor guard pattern used by value objects
// that must not be used as bare zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated and the caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its
// designated constructor function. Embedding a guard in a value object and
// checking it in Validate keeps zero-value instances out of the rest of
// the code.
//
// Example usage:
//
//	type Page struct {
//	    number int
//	    size   int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPage(number, size int) (Page, error) {
//	    if size <= 0 {
//	        return Page{}, errors.New("size must be positive")
//	    }
//	    return Page{number: number, size: size, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Page) Validate() error {
//	    return p.guard.Validate(ErrPageIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
