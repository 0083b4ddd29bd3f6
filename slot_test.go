package deque

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSlotArithmetic(t *testing.T) {
	c := qt.New(t)
	h := header{capacity: 5, start: 3}

	c.Assert(h.next(3), qt.Equals, 4)
	c.Assert(h.next(4), qt.Equals, 0)
	c.Assert(h.previous(0), qt.Equals, 4)
	c.Assert(h.previous(2), qt.Equals, 1)

	c.Assert(h.offset(4, 3), qt.Equals, 2)
	c.Assert(h.offset(1, -3), qt.Equals, 3)
	c.Assert(h.offset(2, 5), qt.Equals, 2)
	c.Assert(h.offset(2, -5), qt.Equals, 2)
	c.Assert(h.offset(0, 0), qt.Equals, 0)

	for i, want := range []int{3, 4, 0, 1, 2, 3} {
		c.Assert(h.slotFor(i), qt.Equals, want, qt.Commentf("logical %d", i))
	}
}

func TestSlotForBoundaryStart(t *testing.T) {
	c := qt.New(t)
	// start == capacity is the same slot as 0.
	h := header{capacity: 4, start: 4, count: 2}
	c.Assert(h.slotFor(0), qt.Equals, 0)
	c.Assert(h.slotFor(1), qt.Equals, 1)
	c.Assert(h.segments(), qt.Equals, segments{first: span{0, 2}})
}

func TestGrowthTarget(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		capacity, minimum int
		linear            bool
		want              int
	}{
		{0, 1, false, 1},
		{1, 2, false, 2},
		{4, 5, false, 6},
		{5, 6, false, 8},
		{10, 30, false, 30},
		{4, 5, true, 5},
		{4, 3, true, 4},
		{0, 0, true, 0},
	}
	for _, test := range tests {
		h := header{capacity: test.capacity}
		c.Check(h.growthTarget(test.minimum, test.linear), qt.Equals, test.want, qt.Commentf("%+v", test))
	}
}
