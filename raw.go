package deque

import "fmt"

// MakeDequeUninitialized allocates a Deque with exactly capacity slots and lets
// fill initialize them in place. fill receives all capacity slots, zeroed, and
// returns how many leading slots it initialized. Anything it wrote past that
// count is discarded.
//
// An error from fill is returned unchanged and the Deque is dropped. Panics if
// capacity is negative or fill returns a count outside [0, capacity]. fill has
// no access to the new Deque, so its storage cannot move; the diagnostic build
// asserts that.
func MakeDequeUninitialized[T any](capacity int, fill func(buf []T) (int, error)) (*Deque[T], error) {
	d := MakeDequeWithCapacity[T](capacity)
	s := d.s

	var buf []T
	if s != nil {
		buf = s.buf[:capacity:capacity]
	}
	n, err := fill(buf)

	if debugChecks {
		assertf(d.s == s && (s == nil || len(s.buf) == capacity), "storage relocated during MakeDequeUninitialized")
	}
	if n < 0 || n > capacity {
		panic(fmt.Sprintf("deque: initialized count %d out of range with capacity %d", n, capacity))
	}
	if err != nil {
		return nil, err
	}
	if s != nil {
		s.count = n
		clear(s.buf[n:])
	}
	if debugChecks {
		s.checkInvariants()
	}
	return d, nil
}

// ContiguousSlice returns every element as a single slice that aliases the
// Deque's storage, when the elements do not wrap around the end of the ring
// buffer. It returns false when they do. An empty Deque returns an empty slice
// and true.
//
// The slice is read-only and valid until the next mutation of any handle
// sharing the storage; it must not be passed back to methods of the same Deque.
func (d *Deque[T]) ContiguousSlice() ([]T, bool) {
	if d.Empty() {
		return nil, true
	}
	return d.s.contiguous()
}

// MutableContiguousSlice is ContiguousSlice for writing. It makes the storage
// unique first, so writes through the slice are seen only by this Deque.
func (d *Deque[T]) MutableContiguousSlice() ([]T, bool) {
	if d.Empty() {
		return nil, true
	}
	return d.ensureUnique(0, false).contiguous()
}

func (s *storage[T]) contiguous() ([]T, bool) {
	g := s.segments()
	if !g.contiguous() {
		return nil, false
	}
	return s.buf[g.first.lo:g.first.hi:g.first.hi], true
}
