// Package pseq implements the Paged Sequence: a growable ordered sequence
// of uniformly sized elements backed by a region.RW rather than a
// general-purpose heap allocation, so it benefits from page-granularity
// allocation, in-place remapping, and explicit decommit.
package pseq

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"pagemem/internal/sys"
	"pagemem/region"
)

// ErrCapacityExceeded is returned by PushWithinCapacity when the sequence
// is already at capacity; it carries the unconsumed value back to the
// caller rather than growing the backing.
var ErrCapacityExceeded = errors.New("pagemem/pseq: capacity exceeded")

// dropper is implemented by element types that need to release a resource
// when the sequence retires them (spec.md §4.5 and §8's drop-count
// property). Go has no destructors, so this is the explicit hook Clear and
// Close call on every element they retire, in index order, exactly once.
// Remove shifts its suffix without dropping it, since those elements stay
// in the sequence.
type dropper interface{ Drop() }

func dropValue[T any](v T) {
	if d, ok := any(v).(dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(&v).(dropper); ok {
		d.Drop()
	}
}

// Sequence is a growable sequence of T backed by a page region. The zero
// value is not usable; construct with New or WithCapacity.
type Sequence[T any] struct {
	backing  region.RW
	length   int
	elemSize int
}

func elemSizeOf[T any]() int {
	var zero T
	n := int(unsafe.Sizeof(zero))
	if n == 0 {
		n = 1
	}
	return n
}

// New allocates a sequence able to hold at least capacity elements without
// growing, and with length 0.
func New[T any](capacity int) *Sequence[T] {
	return WithCapacity[T](capacity)
}

// WithCapacity is an alias for New; both exist because spec.md §4.5 names
// both constructors.
func WithCapacity[T any](capacity int) *Sequence[T] {
	elemSize := elemSizeOf[T]()
	n := capacity * elemSize
	if n < sys.PageSize {
		n = sys.PageSize
	}
	return &Sequence[T]{backing: region.NewRW(n), elemSize: elemSize}
}

func (s *Sequence[T]) ptr() *T {
	return (*T)(s.backing.GetPtrMut(0))
}

// raw is the full backing capacity reinterpreted as []T; indices
// [Len(), Capacity()) are uninitialized and must never be surfaced to a
// caller as element values.
func (s *Sequence[T]) raw() []T {
	n := s.backing.Len() / s.elemSize
	return unsafe.Slice(s.ptr(), n)
}

// Capacity returns backing_bytes / sizeof(T).
func (s *Sequence[T]) Capacity() int {
	return s.backing.Len() / s.elemSize
}

// Len returns the number of initialized elements.
func (s *Sequence[T]) Len() int {
	return s.length
}

// Slice returns an ordered view of the initialized prefix [0, Len()).
// The returned slice is recomputed on every call and is invalidated by any
// subsequent call that may grow the backing (Push, Reserve, ReserveExact,
// AdviseUseSoon).
func (s *Sequence[T]) Slice() []T {
	return s.raw()[:s.length]
}

func nextCap(capacity, elemSize int) int {
	if capacity == 0 {
		n := sys.PageSize / elemSize
		if n < 1 {
			n = 1
		}
		return n
	}
	return capacity * 2
}

func (s *Sequence[T]) growTo(newCap int) {
	s.backing.Resize(newCap * s.elemSize)
}

// Reserve ensures Len()+additional <= Capacity(), growing to
// max(len+additional, next_cap(capacity)) where next_cap doubles, to
// amortize the page-granularity cost of growth.
func (s *Sequence[T]) Reserve(additional int) {
	target := s.length + additional
	if target <= s.Capacity() {
		return
	}
	newCap := target
	if nc := nextCap(s.Capacity(), s.elemSize); nc > newCap {
		newCap = nc
	}
	s.growTo(newCap)
}

// ReserveExact ensures Len()+additional <= Capacity(), growing to
// len+additional without Reserve's doubling. The backing is still sized in
// whole pages, so Capacity() afterwards may exceed len+additional.
func (s *Sequence[T]) ReserveExact(additional int) {
	target := s.length + additional
	if target <= s.Capacity() {
		return
	}
	s.growTo(target)
}

// Push appends value, growing the backing (doubling policy, via Reserve)
// if the sequence is at capacity.
func (s *Sequence[T]) Push(value T) {
	if s.length >= s.Capacity() {
		s.Reserve(1)
	}
	s.raw()[s.length] = value
	s.length++
}

// PushWithinCapacity appends value only if the sequence is under capacity.
// On success it returns the zero value of T and a nil error. On failure it
// returns value unconsumed alongside ErrCapacityExceeded.
func (s *Sequence[T]) PushWithinCapacity(value T) (T, error) {
	if s.length >= s.Capacity() {
		return value, ErrCapacityExceeded
	}
	s.raw()[s.length] = value
	s.length++
	var zero T
	return zero, nil
}

// Pop removes and returns the last element. It returns (zero, false) on an
// empty sequence rather than underflowing (spec.md §9's fixed pop-on-empty
// semantics). The returned value's ownership transfers to the caller: Pop
// never calls Drop.
func (s *Sequence[T]) Pop() (T, bool) {
	if s.length == 0 {
		var zero T
		return zero, false
	}
	s.length--
	return s.raw()[s.length], true
}

// Remove deletes the element at index, shifting the suffix left by one,
// worst-case O(Len()-index). The removed value's ownership transfers to
// the caller: Remove never calls Drop on it. index must be < Len().
func (s *Sequence[T]) Remove(index int) T {
	if index < 0 || index >= s.length {
		panic(&region.BoundsViolation{Offset: index, Length: 1, RegionLen: s.length})
	}
	raw := s.raw()
	v := raw[index]
	copy(raw[index:s.length-1], raw[index+1:s.length])
	s.length--
	return v
}

// Clear drops each initialized element in index order, sets Len() to 0,
// and retains Capacity().
func (s *Sequence[T]) Clear() {
	raw := s.raw()
	for i := 0; i < s.length; i++ {
		dropValue(raw[i])
	}
	s.length = 0
}

// ClearDecommit clears, then decommits the entire backing. spec.md §9
// fixes this as drop-then-decommit: decommitting without dropping would
// leak whatever resources the elements own.
func (s *Sequence[T]) ClearDecommit() {
	s.Clear()
	s.backing.Decommit(0, s.backing.Len())
}

// AdviseUseSoon hints that the next n elements will be needed soon. If n
// exceeds the current capacity, it first grows the backing to hold n
// elements (without changing Len()) before forwarding the hint.
func (s *Sequence[T]) AdviseUseSoon(n int) {
	if n > s.Capacity() {
		s.growTo(n)
	}
	s.backing.AdviseUseSoon(n * s.elemSize)
}

// Close drops every remaining initialized element and releases the
// backing region. A Sequence has no implicit destructor in Go; callers
// must Close it explicitly when done, the same way they would close a
// region or a file.
func (s *Sequence[T]) Close() {
	s.Clear()
	s.backing.Close()
}

// Equal reports whether the sequence's initialized prefix is deeply equal
// to other.
func (s *Sequence[T]) Equal(other []T) bool {
	return reflect.DeepEqual(s.Slice(), other)
}

// EqualBytes reports whether the raw bytes of the initialized prefix equal
// b. Only meaningful for element types without pointers or padding that
// varies between equal values.
func (s *Sequence[T]) EqualBytes(b []byte) bool {
	used := s.backing.Bytes()[:s.length*s.elemSize]
	if len(used) != len(b) {
		return false
	}
	for i := range used {
		if used[i] != b[i] {
			return false
		}
	}
	return true
}

// String formats the sequence by delegating to its slice view, matching
// fmt's usual %v rendering of a Go slice.
func (s *Sequence[T]) String() string {
	return fmt.Sprintf("%v", s.Slice())
}
