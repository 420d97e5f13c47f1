// Package region implements the Page Region: a typed owner of a contiguous
// range of virtual pages. Its eight-state permission lattice (spec.md §2,
// §4.2) is encoded as one concrete Go type per reachable state — None, R,
// W, X, RW, RX, and, under the allow_xw build tag, WX and RWX — each
// wrapping a shared, unexported core. Illegal permission compositions and
// illegal transitions simply have no corresponding method, so the compiler
// rejects them; the one guarantee this package cannot give statically is
// that a wrapper value isn't reused after the transition that consumed it,
// which it instead checks at the top of every method via a generation
// counter (see wrapper.mustLive).
package region

import (
	"fmt"
	"runtime"

	"pagemem/diag"
	"pagemem/internal/perm"
	"pagemem/internal/sys"
)

// BoundsViolation is raised by any indexed access, pointer acquisition, or
// decommit request that falls outside [0, length).
type BoundsViolation struct {
	Offset, Length, RegionLen int
}

func (e *BoundsViolation) Error() string {
	return fmt.Sprintf("pagemem: bounds violation: [%d, %d) outside [0, %d)",
		e.Offset, e.Offset+e.Length, e.RegionLen)
}

func boundsCheck(offset, length, regionLen int) {
	if offset < 0 || length < 0 || offset+length > regionLen {
		panic(&BoundsViolation{Offset: offset, Length: length, RegionLen: regionLen})
	}
}

// core is the shared mutable state behind every wrapper type. A region is
// single-owner: nothing here is protected by a lock, matching spec.md §5 —
// concurrent use of the same core from multiple goroutines is a caller bug,
// not something this package defends against.
type core struct {
	base   uintptr
	length int
	triple perm.Triple
	gen    uint64
	closed bool
	tok    diag.Token
	site   string
}

// retype applies a permission change to c, eliding the kernel call when the
// bit pattern doesn't actually change (spec.md §4.2: "if input and output
// protection triples are bitwise identical, the transition elides the
// kernel call"). It returns the new generation, which the caller embeds in
// the wrapper type it returns.
func (c *core) retype(next perm.Triple) uint64 {
	if c.triple.Bits() != next.Bits() {
		sys.Protect(c.base, c.length, next.Bits())
	}
	c.triple = next
	c.gen++
	diag.Retype(c.tok, c.base, c.length, next)
	return c.gen
}

func (c *core) finalize() {
	if !c.closed {
		diag.WarnLeak(c.site)
		sys.Free(c.base, c.length)
		diag.Untrack(c.tok)
		c.closed = true
	}
}

// wrapper is embedded in every public state type. Its methods are the ones
// spec.md §4.3 says apply "regardless of the region's permission state":
// length, decommit, advice hints, and close. Anything gated on a specific
// permission axis (byte/pointer access, resize, exec) is defined directly
// on the concrete state types instead, so it is never promoted onto a type
// that shouldn't have it.
type wrapper struct {
	c   *core
	gen uint64
}

func (w wrapper) mustLive() {
	if w.c.closed {
		panic("pagemem: use of closed region")
	}
	if w.gen != w.c.gen {
		panic("pagemem: stale region handle: used after a permission transition")
	}
}

// Len returns the region's byte length, always a positive multiple of the
// platform page size.
func (w wrapper) Len() int {
	w.mustLive()
	return w.c.length
}

// Decommit releases physical backing for the page-aligned covering of
// [offset, offset+length) without freeing the virtual addresses. Available
// on every permission state.
func (w wrapper) Decommit(offset, length int) {
	w.mustLive()
	boundsCheck(offset, length, w.c.length)
	start := sys.Rounddown(offset)
	end := sys.Roundup(offset + length)
	sys.Decommit(w.c.base+uintptr(start), end-start)
}

// AdviseUseSoon hints that the first n bytes will be needed soon.
func (w wrapper) AdviseUseSoon(n int) {
	w.mustLive()
	if n > w.c.length {
		n = w.c.length
	}
	sys.Advise(w.c.base, n, sys.WillNeed)
}

// AdviseUseSeq hints that the region will be accessed sequentially.
func (w wrapper) AdviseUseSeq() {
	w.mustLive()
	sys.Advise(w.c.base, w.c.length, sys.Sequential)
}

// AdviseUseRnd hints that the region will be accessed randomly.
func (w wrapper) AdviseUseRnd() {
	w.mustLive()
	sys.Advise(w.c.base, w.c.length, sys.Random)
}

// Close releases the region's backing to the kernel. It is idempotent:
// closing an already-closed region (through any wrapper value that still
// references it) is a no-op.
func (w wrapper) Close() {
	if w.c.closed {
		return
	}
	w.mustLive()
	sys.Free(w.c.base, w.c.length)
	diag.Untrack(w.c.tok)
	w.c.closed = true
}

func newCore(length int, triple perm.Triple, site string) *core {
	if length <= 0 {
		panic("pagemem: zero length request")
	}
	base, n := sys.Allocate(length, triple.Bits())
	c := &core{base: base, length: n, triple: triple, site: site}
	c.tok = diag.Track(base, n, triple, site)
	runtime.SetFinalizer(c, (*core).finalize)
	return c
}

// None is a region with no permissions: neither readable, writable, nor
// executable. It is the natural starting point before the first transition,
// and a safe terminal state to decommit or hold reserved address space in.
type None struct{ wrapper }

// NewNone allocates a region with no permissions.
func NewNone(length int) None {
	return None{wrapper{c: newCore(length, perm.None, "region.None")}}
}

// AllowRead transitions to R.
func (n None) AllowRead() R {
	n.mustLive()
	g := n.c.retype(perm.R)
	return R{wrapper{n.c, g}}
}

// AllowWrite transitions to W.
func (n None) AllowWrite() W {
	n.mustLive()
	g := n.c.retype(perm.W)
	return W{wrapper{n.c, g}}
}

// R is a read-only region.
type R struct{ wrapper }

// NewR allocates a read-only region.
func NewR(length int) R {
	return R{wrapper{c: newCore(length, perm.R, "region.R")}}
}

// DenyRead transitions to None.
func (r R) DenyRead() None {
	r.mustLive()
	g := r.c.retype(perm.None)
	return None{wrapper{r.c, g}}
}

// AllowWrite transitions to RW.
func (r R) AllowWrite() RW {
	r.mustLive()
	g := r.c.retype(perm.RW)
	return RW{wrapper{r.c, g}}
}

// W is a write-only region. POSIX can represent this exactly; on Windows
// the adapter promotes it to read/write at the kernel level (spec.md
// §4.1), but this type still only exposes GetPtrMut — no read access — so
// the promotion never shows up in this package's own API.
type W struct{ wrapper }

// NewW allocates a write-only region.
func NewW(length int) W {
	return W{wrapper{c: newCore(length, perm.W, "region.W")}}
}

// DenyWrite transitions to None.
func (w W) DenyWrite() None {
	w.mustLive()
	g := w.c.retype(perm.None)
	return None{wrapper{w.c, g}}
}

// AllowRead transitions to RW.
func (w W) AllowRead() RW {
	w.mustLive()
	g := w.c.retype(perm.RW)
	return RW{wrapper{w.c, g}}
}

// RW is a read-write, non-executable region: the backing state for the
// Paged Sequence, and the state a JIT-style caller deposits code into
// before calling SetProtectedExec (region/exec.go).
type RW struct{ wrapper }

// NewRW allocates a read-write region.
func NewRW(length int) RW {
	return RW{wrapper{c: newCore(length, perm.RW, "region.RW")}}
}

// DenyWrite transitions to R.
func (rw RW) DenyWrite() R {
	rw.mustLive()
	g := rw.c.retype(perm.R)
	return R{wrapper{rw.c, g}}
}

// DenyRead transitions to W.
func (rw RW) DenyRead() W {
	rw.mustLive()
	g := rw.c.retype(perm.W)
	return W{wrapper{rw.c, g}}
}
