package region

import (
	"unsafe"

	"pagemem/internal/util"
)

// GetPtr returns a raw read pointer at offset, bounds-checked against the
// region length. Only exposed on regions with Read=Allow.
func (r R) GetPtr(offset int) unsafe.Pointer {
	r.mustLive()
	boundsCheck(offset, 1, r.c.length)
	return unsafe.Pointer(r.c.base + uintptr(offset))
}

// Bytes returns the region's contents as a read-only byte slice.
func (r R) Bytes() []byte {
	r.mustLive()
	return unsafe.Slice((*byte)(unsafe.Pointer(r.c.base)), r.c.length)
}

// GetPtrMut returns a raw write pointer at offset, bounds-checked against
// the region length. Only exposed on regions with Write=Allow.
func (w W) GetPtrMut(offset int) unsafe.Pointer {
	w.mustLive()
	boundsCheck(offset, 1, w.c.length)
	return unsafe.Pointer(w.c.base + uintptr(offset))
}

// GetPtr returns a raw read pointer at offset, bounds-checked against the
// region length.
func (rw RW) GetPtr(offset int) unsafe.Pointer {
	rw.mustLive()
	boundsCheck(offset, 1, rw.c.length)
	return unsafe.Pointer(rw.c.base + uintptr(offset))
}

// GetPtrMut returns a raw write pointer at offset, bounds-checked against
// the region length.
func (rw RW) GetPtrMut(offset int) unsafe.Pointer {
	rw.mustLive()
	boundsCheck(offset, 1, rw.c.length)
	return unsafe.Pointer(rw.c.base + uintptr(offset))
}

// Bytes returns the region's contents as a read-only byte slice.
func (rw RW) Bytes() []byte {
	rw.mustLive()
	return unsafe.Slice((*byte)(unsafe.Pointer(rw.c.base)), rw.c.length)
}

// BytesMut returns the region's contents as a mutable byte slice. Only
// exposed when both Read and Write are allowed.
func (rw RW) BytesMut() []byte {
	rw.mustLive()
	return unsafe.Slice((*byte)(unsafe.Pointer(rw.c.base)), rw.c.length)
}

// ReadScalar reads the n-byte (n in {1,2,4,8}) scalar at offset and widens
// it to int, bounds-checked against the region length. An alternative to
// Bytes() for callers that want one field at a time instead of a slice.
func (r R) ReadScalar(offset, n int) int {
	r.mustLive()
	boundsCheck(offset, n, r.c.length)
	return util.Readn(r.Bytes(), n, offset)
}

// ReadScalar reads the n-byte scalar at offset out of rw, same as R's.
func (rw RW) ReadScalar(offset, n int) int {
	rw.mustLive()
	boundsCheck(offset, n, rw.c.length)
	return util.Readn(rw.Bytes(), n, offset)
}

// WriteScalar writes val using n bytes (n in {1,2,4,8}) at offset,
// bounds-checked against the region length.
func (rw RW) WriteScalar(offset, n, val int) {
	rw.mustLive()
	boundsCheck(offset, n, rw.c.length)
	util.Writen(rw.BytesMut(), n, offset, val)
}
