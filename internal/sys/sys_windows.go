//go:build windows

package sys

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// toProtect maps a permission triple onto the closest Windows protection
// constant that can represent it. Windows cannot express write-only or
// write-without-read; those combinations are promoted to the next
// strictly-greater representable value (spec §4.1). The Go type surface
// still only exposes the axes the caller actually requested — promotion
// only changes what the kernel enforces, never what this library lets a
// caller read or write through its own API.
func toProtect(p Perm) uint32 {
	switch {
	case p&Exec != 0 && p&Write != 0:
		return windows.PAGE_EXECUTE_READWRITE
	case p&Exec != 0 && p&Read != 0:
		return windows.PAGE_EXECUTE_READ
	case p&Exec != 0:
		return windows.PAGE_EXECUTE
	case p&Write != 0:
		// write-only promotes to read/write; read/write maps directly.
		return windows.PAGE_READWRITE
	case p&Read != 0:
		return windows.PAGE_READONLY
	default:
		return windows.PAGE_NOACCESS
	}
}

func Allocate(length int, perm Perm) (uintptr, int) {
	if length <= 0 {
		panic("pagemem: zero length request")
	}
	n := Roundup(length)
	addr, err := windows.VirtualAlloc(0, uintptr(n), windows.MEM_COMMIT|windows.MEM_RESERVE, toProtect(perm))
	if err != nil {
		fault("VirtualAlloc", err)
	}
	return addr, n
}

func Protect(base uintptr, length int, perm Perm) {
	var old uint32
	if err := windows.VirtualProtect(base, uintptr(length), toProtect(perm), &old); err != nil {
		fault("VirtualProtect", err)
	}
}

// Advise has no general-purpose analogue on Windows outside of
// PrefetchVirtualMemory/OfferVirtualMemory, neither of which covers every
// hint this adapter's vocabulary exposes; every hint is therefore a no-op
// here, which is within spec §4.1's "failures are silently ignored"
// contract (a no-op hint cannot fail).
func Advise(base uintptr, length int, kind Advice) {}

// Decommit discards the physical backing of the range via
// DiscardVirtualMemory, which golang.org/x/sys/windows does not wrap
// directly; it is resolved from kernel32.dll the same way the rest of the
// package resolves exports that predate its generated bindings.
var (
	modkernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procDiscardVirtualMemo = modkernel32.NewProc("DiscardVirtualMemory")
)

func Decommit(base uintptr, length int) {
	r, _, err := procDiscardVirtualMemo.Call(base, uintptr(length))
	if r != 0 {
		fault("DiscardVirtualMemory", err)
	}
}

func Free(base uintptr, length int) {
	if err := windows.VirtualFree(base, 0, windows.MEM_RELEASE); err != nil {
		fault("VirtualFree", err)
	}
}
