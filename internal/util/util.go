// Package util holds small generic helpers shared by the platform adapter
// and the region package: integer rounding that works over any integer
// type, not just the page-size-fixed case sys.Roundup/Rounddown need, and
// fixed-width scalar access into a byte slice at an arbitrary offset.
package util

import "unsafe"

// Int is satisfied by every built-in integer type.
type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Min returns the smaller of a and b.
func Min[T Int](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Rounddown aligns v down to the nearest multiple of b.
func Rounddown[T Int](v, b T) T {
	return v - (v % b)
}

// Roundup aligns v up to the nearest multiple of b.
func Roundup[T Int](v, b T) T {
	return Rounddown(v+b-1, b)
}

// Readn reads an n-byte (n in {1,2,4,8}) little-endian-native scalar out
// of a at offset off and widens it to int. It panics if the read falls
// outside a or n isn't one of the supported widths.
func Readn(a []uint8, n int, off int) int {
	if off < 0 || n < 0 || off+n > len(a) {
		panic("pagemem/util: Readn out of bounds")
	}
	p := unsafe.Pointer(&a[off])
	switch n {
	case 8:
		return int(*(*int64)(p))
	case 4:
		return int(*(*uint32)(p))
	case 2:
		return int(*(*uint16)(p))
	case 1:
		return int(*(*uint8)(p))
	default:
		panic("pagemem/util: unsupported Readn width")
	}
}

// Writen writes val using sz bytes (sz in {1,2,4,8}) into a at offset off.
// It panics if the write falls outside a or sz isn't one of the supported
// widths.
func Writen(a []uint8, sz int, off int, val int) {
	if off < 0 || sz < 0 || off+sz > len(a) {
		panic("pagemem/util: Writen out of bounds")
	}
	p := unsafe.Pointer(&a[off])
	switch sz {
	case 8:
		*(*int64)(p) = int64(val)
	case 4:
		*(*uint32)(p) = uint32(val)
	case 2:
		*(*uint16)(p) = uint16(val)
	case 1:
		*(*uint8)(p) = uint8(val)
	default:
		panic("pagemem/util: unsupported Writen width")
	}
}
