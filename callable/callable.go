// Package callable implements the Callable Handle: a lifetime-bound,
// signature-typed pointer to code inside an execute-permitted region.
//
// spec.md §4.4 asks for an enumeration of C-calling-convention signatures
// for arities 0 through 16 — a concession languages without variadic
// generics need to abstract over function arity. Go already has a way to
// parametrize over an entire function signature: the function type itself.
// Handle[F] takes the concrete Go func type (e.g. func(uint64, uint64)
// uint64) as its one type parameter, which carries arity, argument types,
// and return type in a single piece of static information — the Go-native
// reading of design note "In languages with variadic generics, a single
// generic implementation suffices".
package callable

import "unsafe"

// Handle is a lifetime-bound, signature-typed pointer to native code. F is
// the Go func type standing in for the C-convention signature; calling
// Unchecked() reinterprets the stored code pointer as a value of type F.
//
// Dispatch through a Handle is inherently unchecked: this package cannot
// distinguish correct machine code from incorrect machine code, so every
// call through Unchecked's result is the caller's contract, exactly as
// spec.md §4.4 and §7 describe.
type Handle[F any] struct {
	ptr  unsafe.Pointer
	keep any
}

// New constructs a Handle over ptr. keepAlive should be the source region
// (or any value that outlives it); callers that hold a Handle past the
// point where its region would otherwise become unreachable need the
// region kept alive for as long as the Handle might still be called, and
// New captures that reference for exactly that purpose. Dropping a Handle
// itself is a no-op — it owns no memory of its own.
func New[F any](ptr unsafe.Pointer, keepAlive any) Handle[F] {
	return Handle[F]{ptr: ptr, keep: keepAlive}
}

// Unchecked reinterprets the handle's code pointer as a Go value of type F
// and returns it for the caller to invoke directly. The returned function
// value is only valid for as long as the source region remains in an
// execute-permitted state; nothing about calling it is checked.
func (h Handle[F]) Unchecked() F {
	// A Go func value points at a word that holds the code address, so the
	// code pointer is boxed in such a word before the reinterpretation.
	fn := new(unsafe.Pointer)
	*fn = h.ptr
	return *(*F)(unsafe.Pointer(&fn))
}

// Ptr is the escape hatch: the raw, untyped code pointer, for a caller that
// wants to invoke it through its own mechanism rather than Unchecked's Go
// func-value reinterpretation.
func (h Handle[F]) Ptr() unsafe.Pointer {
	return h.ptr
}
