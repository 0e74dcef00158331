// Package guarded demonstrates access control: a type whose state can only
// be reached through the operations it chooses to export.
//
// Holder's accessors are unexported, so code outside this package can
// construct a Holder and read it through Value, but cannot call getX or
// setX. Inside the package the constructor uses them freely, the same way
// a class body may call its own private methods without a receiver.
package guarded

import (
	"fmt"
	"io"
)

// Holder stores a single value behind private accessors.
type Holder struct {
	x any
}

// New builds a Holder, assigns val through the private setter and prints
// it through the private getter.
func New(w io.Writer, val any) *Holder {
	h := &Holder{}
	h.setX(val)
	fmt.Fprintln(w, h.getX())
	// Calling h.getX from another package fails to compile ("h.getX
	// undefined (cannot refer to unexported method getX)"), which is the
	// static equivalent of a private method called with an explicit
	// receiver raising NoMethodError.
	return h
}

// Value exposes the stored value read-only.
func (h *Holder) Value() any {
	return h.getX()
}

func (h *Holder) getX() any {
	return h.x
}

func (h *Holder) setX(val any) {
	h.x = val
}
