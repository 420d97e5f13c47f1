//go:build unix

package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func toProt(p Perm) int {
	prot := unix.PROT_NONE
	if p&Read != 0 {
		prot |= unix.PROT_READ
	}
	if p&Write != 0 {
		prot |= unix.PROT_WRITE
	}
	if p&Exec != 0 {
		prot |= unix.PROT_EXEC
	}
	return prot
}

// Allocate requests a private, anonymous mapping of length bytes rounded up
// to PageSize with the given initial protection. The kernel zero-fills
// anonymous mappings, so the returned region reads as zero without any
// explicit work here.
func Allocate(length int, perm Perm) (uintptr, int) {
	if length <= 0 {
		panic("pagemem: zero length request")
	}
	n := Roundup(length)
	b, err := unix.Mmap(-1, 0, n, toProt(perm), unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		fault("mmap", err)
	}
	return uintptr(unsafe.Pointer(&b[0])), n
}

// Protect changes protection over the exact region. Any failure here is
// fatal: the caller's type-level expectation of the region's permissions
// would otherwise diverge from the kernel's view.
func Protect(base uintptr, length int, perm Perm) {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), length)
	if err := unix.Mprotect(b, toProt(perm)); err != nil {
		fault("mprotect", err)
	}
}

// Advise issues a non-binding hint. Failures are silently ignored; hints are
// not correctness-bearing.
func Advise(base uintptr, length int, kind Advice) {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), length)
	var adv int
	switch kind {
	case WillNeed:
		adv = unix.MADV_WILLNEED
	case Sequential:
		adv = unix.MADV_SEQUENTIAL
	case Random:
		adv = unix.MADV_RANDOM
	case DontNeed:
		adv = unix.MADV_DONTNEED
	}
	_ = unix.Madvise(b, adv)
}

// Decommit releases physical backing for the covered range while leaving
// the virtual addresses reserved. Subsequent faults observe zero pages.
func Decommit(base uintptr, length int) {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), length)
	if err := unix.Madvise(b, unix.MADV_DONTNEED); err != nil {
		fault("madvise(MADV_DONTNEED)", err)
	}
}

// Free releases the mapping. Failure is fatal.
func Free(base uintptr, length int) {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), length)
	if err := unix.Munmap(b); err != nil {
		fault("munmap", err)
	}
}
