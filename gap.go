package deque

// wrapCase classifies a shift by which of its two ranges crosses the physical
// end of the buffer.
type wrapCase uint8

const (
	neitherWraps wrapCase = iota
	targetWraps
	sourceWraps
	bothWrap
)

func (c wrapCase) String() string {
	switch c {
	case neitherWraps:
		return "neither wraps"
	case targetWraps:
		return "target wraps"
	case sourceWraps:
		return "source wraps"
	case bothWrap:
		return "both wrap"
	}
	return "unknown"
}

type blockMove struct{ src, dst, n int }

// shiftPlan is a shift of a logical run decomposed into block moves whose
// source and destination are both contiguous. Each range wraps at most once,
// so three moves always suffice.
type shiftPlan struct {
	moves [3]blockMove
	n     int
	kind  wrapCase
}

// planShift decomposes moving n elements from slot src to slot dst. Both slots
// must be below capacity and n plus the shift distance must fit in the ring.
func (h *header) planShift(src, dst, n int) shiftPlan {
	var p shiftPlan
	switch srcWraps, dstWraps := src+n > h.capacity, dst+n > h.capacity; {
	case srcWraps && dstWraps:
		p.kind = bothWrap
	case srcWraps:
		p.kind = sourceWraps
	case dstWraps:
		p.kind = targetWraps
	}
	for n > 0 {
		run := min(n, h.capacity-src, h.capacity-dst)
		p.moves[p.n] = blockMove{src: src, dst: dst, n: run}
		p.n++
		src, dst, n = h.offset(src, run), h.offset(dst, run), n-run
	}
	return p
}

// shift relocates n elements from slot src to slot dst. towardEnd says dst is
// logically after src; the moves then run back to front so no element is
// overwritten before it has moved.
func (s *storage[T]) shift(src, dst, n int, towardEnd bool) {
	if n == 0 {
		return
	}
	p := s.planShift(src, dst, n)
	if debugChecks {
		debugLog("shift", "src", src, "dst", dst, "n", n, "case", p.kind, "moves", p.n)
	}
	if towardEnd {
		for i := p.n - 1; i >= 0; i-- {
			m := p.moves[i]
			moveBlock(s.buf, m.dst, m.src, m.n)
		}
		return
	}
	for _, m := range p.moves[:p.n] {
		moveBlock(s.buf, m.dst, m.src, m.n)
	}
}

// openGap makes room for size elements at logical offset at and returns the
// zeroed slots for the caller to fill. The storage must be unique and have
// count+size <= capacity.
//
// The shorter side moves: the tail forward when it is no longer than the head,
// otherwise the head backward. At most min(at, count-at) elements relocate.
func (s *storage[T]) openGap(at, size int) segments {
	if debugChecks {
		s.assertMutable()
		assertf(at >= 0 && at <= s.count, "gap offset out of range", "at", at, "count", s.count)
		assertf(size >= 0 && s.count+size <= s.capacity, "gap does not fit", "size", size, "count", s.count, "capacity", s.capacity)
	}
	if size == 0 {
		return segments{}
	}

	head, tail := at, s.count-at
	var gap segments
	if tail <= head {
		src := s.slotFor(at)
		s.shift(src, s.offset(src, size), tail, true)
		gap = s.spanAt(src, size)
	} else {
		start := s.offset(s.start, -size)
		s.shift(s.start, start, head, false)
		s.start = start
		gap = s.spanAt(s.slotFor(at), size)
	}
	s.count += size

	if debugChecks {
		s.checkInvariants()
	}
	return gap
}

// closeGap destroys the elements in the logical range [lo, hi) and slides the
// shorter side over the hole. If the head slides, start advances by the gap
// size; otherwise only count shrinks. The storage must be unique.
func (s *storage[T]) closeGap(lo, hi int) {
	if debugChecks {
		s.assertMutable()
		assertf(lo >= 0 && lo <= hi && hi <= s.count, "gap range out of bounds", "lo", lo, "hi", hi, "count", s.count)
	}
	size := hi - lo
	if size == 0 {
		return
	}
	clearSegments(s.buf, s.segmentsFor(lo, hi))

	head, tail := lo, s.count-hi
	if tail <= head {
		s.shift(s.slotFor(hi), s.slotFor(lo), tail, false)
	} else {
		start := s.offset(s.start, size)
		s.shift(s.start, start, head, true)
		s.start = start
	}
	s.count -= size
	if s.count == 0 {
		s.start = 0
	}

	if debugChecks {
		s.checkInvariants()
	}
}
