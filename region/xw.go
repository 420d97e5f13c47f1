//go:build allow_xw && !noexec

// This file exists only when a build opts out of the default deny_xw rule
// (spec.md §6). It adds the two states the default build's type surface
// can never construct: WX and RWX. Most programs should never need this —
// a writable and executable mapping at the same time is exactly the
// primitive self-modifying-code exploits rely on — so it is additive and
// explicit rather than the default.
package region

import "pagemem/internal/perm"

// WX is a write-execute region. Unreachable unless built with -tags
// allow_xw.
type WX struct{ wrapper }

// AllowExec transitions W to WX.
func (w W) AllowExec() WX {
	w.mustLive()
	g := w.c.retype(perm.WX)
	return WX{wrapper{w.c, g}}
}

// DenyExec transitions WX back to W.
func (wx WX) DenyExec() W {
	wx.mustLive()
	g := wx.c.retype(perm.W)
	return W{wrapper{wx.c, g}}
}

// RWX is a read-write-execute region. Unreachable unless built with -tags
// allow_xw.
type RWX struct{ wrapper }

// AllowExec transitions RW to RWX.
func (rw RW) AllowExec() RWX {
	rw.mustLive()
	g := rw.c.retype(perm.RWX)
	return RWX{wrapper{rw.c, g}}
}

// DenyExec transitions RWX back to RW.
func (rwx RWX) DenyExec() RW {
	rwx.mustLive()
	g := rwx.c.retype(perm.RW)
	return RW{wrapper{rwx.c, g}}
}

// Resize is available on RWX for the same reason it's available on RW:
// Read=Allow and Write=Allow.
func (rwx RWX) Resize(newLength int) {
	rw := RW{rwx.wrapper}
	rw.Resize(newLength)
}
