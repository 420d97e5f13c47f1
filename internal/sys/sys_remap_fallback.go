//go:build !linux

package sys

import "unsafe"

// Remap is the non-Linux fallback: allocate a fresh region, copy the
// preserved prefix, free the old region, and return the new base. Used on
// Windows (which has no in-place remap primitive at all) and on POSIX
// targets other than Linux (darwin, the BSDs) that lack mremap(2).
func Remap(base uintptr, oldLen, newLen int) uintptr {
	n := Roundup(newLen)
	newBase, _ := Allocate(n, Read|Write)
	keep := oldLen
	if n < keep {
		keep = n
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(base)), keep)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(newBase)), keep)
	copy(dst, src)
	Free(base, oldLen)
	return newBase
}
