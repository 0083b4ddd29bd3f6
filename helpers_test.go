package deque

import (
	"slices"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equateEmpty treats nil and empty slices as equal.
var (
	cmpEquateEmpty = cmpopts.EquateEmpty()
	equateEmpty    = qt.CmpEquals(cmpEquateEmpty)
)

// makeRing builds a Deque with the given capacity whose first element sits in
// physical slot start.
func makeRing(capacity, start int, values []int) *Deque[int] {
	d := MakeDequeWithCapacity[int](capacity)
	s := d.s
	s.start = start
	copyIn(s.buf, s.spanAt(start, len(values)), values)
	s.count = len(values)
	return d
}

// seq returns 1..n. Zero never appears so stale slots are detectable.
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// countMoves runs f and returns how many elements moveBlock relocated.
func countMoves(f func()) (n int) {
	onMove = func(k int) { n += k }
	defer func() { onMove = nil }()
	f()
	return n
}

// assertInvariants checks the header and that every free slot is zeroed.
func assertInvariants(c *qt.C, d *Deque[int], args ...any) {
	c.Helper()
	s := d.s
	if s == nil {
		return
	}
	c.Assert(s.capacity, qt.Equals, append([]any{len(s.buf)}, args...)...)
	c.Assert(s.count >= 0 && s.count <= s.capacity, qt.IsTrue, append([]any{qt.Commentf("count %d capacity %d", s.count, s.capacity)}, args...)...)
	c.Assert(s.start >= 0 && s.start <= s.capacity, qt.IsTrue, append([]any{qt.Commentf("start %d capacity %d", s.start, s.capacity)}, args...)...)
	a, b := views(s.buf, s.availableSegments())
	for _, v := range slices.Concat(a, b) {
		c.Assert(v, qt.Equals, append([]any{0, qt.Commentf("free slot not zeroed: %v", s.buf)}, args...)...)
	}
}
