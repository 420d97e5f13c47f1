//go:build !noexec

package region

import (
	"unsafe"

	"pagemem/internal/perm"
)

// X is an execute-only region: readable to the CPU's instruction fetch
// path but not exposed for reads or writes through this package's API.
// Representable directly on both adapters (spec.md §4.1's protection
// table lists "execute (001)" as representable on Windows; POSIX allows
// PROT_EXEC alone).
type X struct{ wrapper }

// NewX allocates an execute-only region.
func NewX(length int) X {
	return X{wrapper{c: newCore(length, perm.X, "region.X")}}
}

// DenyExec transitions to None.
func (x X) DenyExec() None {
	x.mustLive()
	g := x.c.retype(perm.None)
	return None{wrapper{x.c, g}}
}

// AllowRead transitions to RX.
func (x X) AllowRead() RX {
	x.mustLive()
	g := x.c.retype(perm.RX)
	return RX{wrapper{x.c, g}}
}

// AllowWriteNoExec atomically grants write and denies execute in a single
// kernel call, the safe way to move from an executable state toward a
// writable one without ever representing the forbidden W+X composition
// (spec.md §4.2's allow_write_no_exec).
func (x X) AllowWriteNoExec() W {
	x.mustLive()
	g := x.c.retype(perm.W)
	return W{wrapper{x.c, g}}
}

// GetFnPtr returns an untyped code pointer at offset, bounds-checked
// against the region length.
func (x X) GetFnPtr(offset int) unsafe.Pointer {
	x.mustLive()
	boundsCheck(offset, 1, x.c.length)
	return unsafe.Pointer(x.c.base + uintptr(offset))
}

// RX is a read-execute region: the typical landing state for emitted JIT
// code after RW.SetProtectedExec.
type RX struct{ wrapper }

// NewRX allocates a read-execute region directly (bypassing the usual
// RW->SetProtectedExec path); useful when the code was prepared elsewhere
// and only needs to be made callable, not written to by this process.
func NewRX(length int) RX {
	return RX{wrapper{c: newCore(length, perm.RX, "region.RX")}}
}

// DenyExec transitions to R.
func (rx RX) DenyExec() R {
	rx.mustLive()
	g := rx.c.retype(perm.R)
	return R{wrapper{rx.c, g}}
}

// DenyRead transitions to X.
func (rx RX) DenyRead() X {
	rx.mustLive()
	g := rx.c.retype(perm.X)
	return X{wrapper{rx.c, g}}
}

// AllowWriteNoExec atomically grants write and denies execute, landing on
// RW. See X.AllowWriteNoExec for why this is atomic rather than two calls.
func (rx RX) AllowWriteNoExec() RW {
	rx.mustLive()
	g := rx.c.retype(perm.RW)
	return RW{wrapper{rx.c, g}}
}

// GetFnPtr returns an untyped code pointer at offset, bounds-checked
// against the region length.
func (rx RX) GetFnPtr(offset int) unsafe.Pointer {
	rx.mustLive()
	boundsCheck(offset, 1, rx.c.length)
	return unsafe.Pointer(rx.c.base + uintptr(offset))
}

// GetPtr returns a raw read pointer at offset, bounds-checked against the
// region length. RX has Read=Allow, so this is exposed alongside GetFnPtr.
func (rx RX) GetPtr(offset int) unsafe.Pointer {
	rx.mustLive()
	boundsCheck(offset, 1, rx.c.length)
	return unsafe.Pointer(rx.c.base + uintptr(offset))
}

// Bytes returns the region's contents as a read-only byte slice.
func (rx RX) Bytes() []byte {
	rx.mustLive()
	return unsafe.Slice((*byte)(unsafe.Pointer(rx.c.base)), rx.c.length)
}

// R gains AllowExec only because R has Write=Deny; spec.md §4.2: "allow_exec
// is only exposed on regions with W=Deny".
func (r R) AllowExec() RX {
	r.mustLive()
	g := r.c.retype(perm.RX)
	return RX{wrapper{r.c, g}}
}

// None gains AllowExec for the same reason: Write=Deny here too.
func (n None) AllowExec() X {
	n.mustLive()
	g := n.c.retype(perm.X)
	return X{wrapper{n.c, g}}
}

// SetProtectedExec atomically denies write and allows execute — the
// canonical JIT-emission transition: allocate RW, deposit code, then flip
// straight to RX without ever representing a W+X region in between
// (spec.md §4.2's set_protected_exec, described there as an "atomic
// pair").
func (rw RW) SetProtectedExec() RX {
	rw.mustLive()
	g := rw.c.retype(perm.RX)
	return RX{wrapper{rw.c, g}}
}

// Executable is implemented by every execute-permitted region type; it
// exists only so GetFn (which must be a free function, not a method, since
// Go methods cannot introduce their own type parameters) can accept either.
type Executable interface {
	GetFnPtr(offset int) unsafe.Pointer
}
