// Package perm names the eight-state permission lattice that
// region's concrete wrapper types encode statically. The lattice itself
// carries no runtime behavior — spec.md §2 calls it "pure compile-time
// information; it has no runtime representation" — but region, pseq, and
// diag all need a small runtime descriptor of *which* triple a given
// concrete type stands for, e.g. to label a diagnostics snapshot or compute
// the sys.Perm bits to hand the platform adapter. Triple is that descriptor;
// nothing in this package performs a permission check.
package perm

import "pagemem/internal/sys"

// Triple is the (Read, Write, Execute) permission triple a Page Region type
// encodes. It is never used to make an access-control decision at runtime —
// that decision is made by which methods a region's concrete Go type
// exposes — but every concrete type reports its own Triple for diagnostics
// and for translating to the platform adapter's bit encoding.
type Triple struct {
	Read, Write, Exec bool
}

func (t Triple) String() string {
	s := [3]byte{'-', '-', '-'}
	if t.Read {
		s[0] = 'r'
	}
	if t.Write {
		s[1] = 'w'
	}
	if t.Exec {
		s[2] = 'x'
	}
	return string(s[:])
}

// The eight named triples of the lattice. WX and RWX are only reachable
// through region types compiled with the allow_xw build tag.
var (
	None = Triple{}
	R    = Triple{Read: true}
	W    = Triple{Write: true}
	X    = Triple{Exec: true}
	RW   = Triple{Read: true, Write: true}
	RX   = Triple{Read: true, Exec: true}
	WX   = Triple{Write: true, Exec: true}
	RWX  = Triple{Read: true, Write: true, Exec: true}
)

// DenyXW reports whether t combines Write and Execute — the one composition
// the default build's type surface never constructs (spec.md §6's deny_xw
// toggle, on by default).
func (t Triple) DenyXW() bool { return t.Write && t.Exec }

// Bits returns the sys.Perm encoding of t for handing to the platform
// adapter.
func (t Triple) Bits() sys.Perm {
	var p sys.Perm
	if t.Read {
		p |= sys.Read
	}
	if t.Write {
		p |= sys.Write
	}
	if t.Exec {
		p |= sys.Exec
	}
	return p
}
