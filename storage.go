package deque

import "sync/atomic"

// storage is the reference-counted owner of a ring buffer. Every Deque handle
// pointing at a storage holds one reference. A storage with more than one
// reference is read-only; the first mutator to observe sharing makes a private
// copy.
//
// A nil *storage is the shared empty sentinel: capacity 0, nothing allocated.
type storage[T any] struct {
	refs atomic.Int32
	header
	// len(buf) == capacity. Slots outside the live segments hold the zero value.
	buf []T
}

func newStorage[T any](capacity int) *storage[T] {
	if capacity < 0 {
		panic("deque: negative capacity")
	}
	s := &storage[T]{buf: make([]T, capacity)}
	s.capacity = capacity
	s.refs.Store(1)
	return s
}

// retain adds a reference and returns s.
func (s *storage[T]) retain() *storage[T] {
	s.refs.Add(1)
	return s
}

// release drops a reference. The last owner destroys the live elements.
func (s *storage[T]) release() {
	if s.refs.Add(-1) == 0 {
		clearSegments(s.buf, s.segments())
		s.count = 0
		s.start = 0
	}
}

func (s *storage[T]) isUnique() bool { return s.refs.Load() == 1 }

// clone allocates a new storage of the given capacity holding a copy of every
// live element, starting at slot 0.
func (s *storage[T]) clone(capacity int) *storage[T] {
	if capacity < s.count {
		panic("deque: clone capacity smaller than count")
	}
	c := newStorage[T](capacity)
	c.count = copyOut(s.buf, s.segments(), c.buf)
	return c
}

// ensureUnique makes d the sole owner of storage with room for at least
// minimumCapacity elements and returns it:
//
//	fits  unique  action
//	yes   yes     none
//	yes   no      duplicate at the same capacity
//	no    yes     grow, moving elements out of the old buffer
//	no    no      grow, copying elements out of the shared buffer
//
// It returns nil only when d has no storage and minimumCapacity is 0.
func (d *Deque[T]) ensureUnique(minimumCapacity int, linearGrowth bool) *storage[T] {
	s := d.s
	var h header
	unique := true
	if s != nil {
		h = s.header
		unique = s.isUnique()
	}

	fits := h.capacity >= minimumCapacity
	switch {
	case fits && unique:
		return s
	case fits:
		if debugChecks {
			debugLog("copy on write", "capacity", h.capacity, "count", h.count)
		}
		d.adopt(s.clone(h.capacity))
	default:
		target := h.growthTarget(minimumCapacity, linearGrowth)
		if debugChecks {
			debugLog("grow", "from", h.capacity, "to", target, "count", h.count, "unique", unique)
		}
		if s == nil {
			d.adopt(newStorage[T](target))
		} else {
			// Dropping the last reference in adopt clears the old buffer,
			// so the unique case is a move.
			d.adopt(s.clone(target))
		}
	}
	if debugChecks {
		d.s.checkInvariants()
	}
	return d.s
}

// adopt points d at s, which must already carry d's reference, and drops the
// reference d held before.
func (d *Deque[T]) adopt(s *storage[T]) {
	old := d.s
	d.s = s
	if old != nil {
		old.release()
	}
}

// checkInvariants validates the header. Only called when debugChecks is set.
func (s *storage[T]) checkInvariants() {
	if s == nil {
		return
	}
	h := s.header
	assertf(h.capacity == len(s.buf), "capacity out of sync with buffer", "capacity", h.capacity, "len", len(s.buf))
	assertf(h.count >= 0 && h.count <= h.capacity, "count out of range", "count", h.count, "capacity", h.capacity)
	assertf(h.start >= 0 && h.start <= h.capacity, "start out of range", "start", h.start, "capacity", h.capacity)
	assertf(s.refs.Load() >= 1, "live storage without owners", "refs", s.refs.Load())
}

// assertMutable checks that s may be written. Only called when debugChecks is set.
func (s *storage[T]) assertMutable() {
	assertf(s != nil && s.isUnique(), "mutation of shared storage")
}
