//go:build linux

package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Remap asks the kernel to resize the mapping in place, possibly relocating
// it. Linux supports this directly via mremap(2); every other target falls
// back to allocate+copy+free (see sys_remap_fallback.go).
func Remap(base uintptr, oldLen, newLen int) uintptr {
	newLen = Roundup(newLen)
	old := unsafe.Slice((*byte)(unsafe.Pointer(base)), oldLen)
	b, err := unix.Mremap(old, newLen, unix.MREMAP_MAYMOVE)
	if err != nil {
		fault("mremap", err)
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
