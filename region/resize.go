package region

import (
	"pagemem/diag"
	"pagemem/internal/sys"
)

// Resize changes the region's byte length, preserving the prefix
// min(old_len, new_len); it may relocate the base. Pointer identity is not
// preserved across a call to Resize. Only exposed on RW (and on RWX under
// the allow_xw build tag) — spec.md §4.3 restricts resize to regions with
// Read=Allow and Write=Allow.
func (rw RW) Resize(newLength int) {
	rw.mustLive()
	if newLength <= 0 {
		panic("pagemem: zero length request")
	}
	newBase := sys.Remap(rw.c.base, rw.c.length, newLength)
	rw.c.base = newBase
	rw.c.length = sys.Roundup(newLength)
	diag.Retype(rw.c.tok, rw.c.base, rw.c.length, rw.c.triple)
}
