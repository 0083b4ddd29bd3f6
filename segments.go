package deque

// span is a half-open range of physical slots [lo, hi) that does not wrap.
type span struct{ lo, hi int }

func (s span) len() int { return s.hi - s.lo }

// segments is a logical run of slots expressed as one span, or as two spans when
// the run crosses the physical end of the buffer. In the two-span case first ends
// at capacity and second starts at 0. second is empty when the run is contiguous.
type segments struct {
	first, second span
}

// contiguous reports whether the run is a single span.
func (g segments) contiguous() bool { return g.second.len() == 0 }

func (g segments) len() int { return g.first.len() + g.second.len() }

// spanAt is the run of n slots starting at slot s.
func (h *header) spanAt(s, n int) segments {
	if s >= h.capacity {
		s -= h.capacity
	}
	if s+n <= h.capacity {
		return segments{first: span{s, s + n}}
	}
	return segments{
		first:  span{s, h.capacity},
		second: span{0, n - (h.capacity - s)},
	}
}

// segments covers every live element.
func (h *header) segments() segments {
	return h.spanAt(h.start, h.count)
}

// segmentsFor covers the logical range [lo, hi).
func (h *header) segmentsFor(lo, hi int) segments {
	return h.spanAt(h.slotFor(lo), hi-lo)
}

// availableSegments covers the free slots between the logical end and the
// logical start, going around the ring.
func (h *header) availableSegments() segments {
	return h.spanAt(h.endSlot(), h.free())
}

// prependSegments covers the last n free slots before the logical start.
func (h *header) prependSegments(n int) segments {
	return h.spanAt(h.offset(h.start, -n), n)
}

// views returns g as subslices of buf, in logical order.
func views[T any](buf []T, g segments) (a, b []T) {
	return buf[g.first.lo:g.first.hi], buf[g.second.lo:g.second.hi]
}

// clearSegments destroys the elements in g.
func clearSegments[T any](buf []T, g segments) {
	a, b := views(buf, g)
	clear(a)
	clear(b)
}

// copyOut copies the elements in g to dst and returns how many were copied.
func copyOut[T any](buf []T, g segments, dst []T) int {
	a, b := views(buf, g)
	n := copy(dst, a)
	return n + copy(dst[n:], b)
}

// copyIn fills g from src and returns how many slots were written.
func copyIn[T any](buf []T, g segments, src []T) int {
	a, b := views(buf, g)
	n := copy(a, src)
	return n + copy(b, src[n:])
}

// onMove, when set, observes every element relocation. Tests use it to count
// moves.
var onMove func(n int)

// moveBlock transfers n elements from buf[src:] to buf[dst:]. Neither range may
// wrap. The ranges may overlap. Source slots that the destination does not cover
// are zeroed, so ownership moves instead of being duplicated.
func moveBlock[T any](buf []T, dst, src, n int) {
	if n == 0 || dst == src {
		return
	}
	if onMove != nil {
		onMove(n)
	}
	copy(buf[dst:dst+n], buf[src:src+n])
	if dst > src {
		clear(buf[src:min(src+n, dst)])
	} else {
		clear(buf[max(src, dst+n) : src+n])
	}
}
