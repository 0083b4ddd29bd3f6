package deque

import (
	"iter"
	"slices"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCopySliceToDeque(t *testing.T) {
	c := qt.New(t)
	s := make([]int, 3, 10)
	copy(s, []int{1, 2, 3})
	d := CopySliceToDeque(s)
	c.Assert(d.Cap(), qt.Equals, 3)
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, []int{1, 2, 3})

	s[0] = 100
	c.Assert(d.At(0), qt.Equals, 1)

	empty := CopySliceToDeque[int](nil)
	c.Assert(empty.Len(), qt.Equals, 0)
	c.Assert(empty.s, qt.IsNil)
}

func TestCollectDeque(t *testing.T) {
	c := qt.New(t)
	d := CollectDeque(slices.Values(seq(100)))
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, seq(100))
	assertInvariants(c, d)

	empty := CollectDeque(slices.Values([]int(nil)))
	c.Assert(empty.Len(), qt.Equals, 0)
	c.Assert(empty.s, qt.IsNil)
}

func TestAppendSeqGrowsGeometrically(t *testing.T) {
	c := qt.New(t)
	const n = 100_000
	d := MakeDeque[int]()
	grows, lastCap := 0, 0
	d.AppendSeq(func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
			if d.Cap() != lastCap {
				grows++
				lastCap = d.Cap()
			}
		}
	})
	c.Assert(d.Len(), qt.Equals, n)
	c.Assert(grows <= 32, qt.IsTrue, qt.Commentf("%d reallocations", grows))
	c.Assert(d.At(n-1), qt.Equals, n-1)
}

func TestAppendSlicePrependSliceWrap(t *testing.T) {
	c := qt.New(t)
	for start := range 8 {
		d := makeRing(8, start, []int{3, 4})
		d.AppendSlice([]int{5, 6, 7})
		d.PrependSlice([]int{0, 1, 2})
		c.Assert(d.MakeSliceCopy(), qt.DeepEquals, []int{0, 1, 2, 3, 4, 5, 6, 7}, qt.Commentf("start %d", start))
		c.Assert(d.Cap(), qt.Equals, 8)
		assertInvariants(c, d)
	}
}

func TestPrependSeq(t *testing.T) {
	c := qt.New(t)
	for start := range 6 {
		d := makeRing(6, start, []int{4, 5})
		d.PrependSeq(slices.Values([]int{1, 2, 3}))
		c.Assert(d.MakeSliceCopy(), qt.DeepEquals, seq(5), qt.Commentf("start %d", start))
		assertInvariants(c, d)
	}

	d := MakeDeque[int]()
	d.PrependSeq(slices.Values(seq(50)))
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, seq(50))
	d.PrependSeq(slices.Values([]int{0}))
	c.Assert(d.At(0), qt.Equals, 0)
}

func TestAppendSeqSharedDrain(t *testing.T) {
	c := qt.New(t)
	const n, every = 1000, 7

	type cloned struct {
		d   *Deque[int]
		len int
	}
	var clones []cloned
	d := MakeDeque[int]()
	d.AppendSeq(func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			if !yield(i) {
				return
			}
			if i%every == 0 {
				clones = append(clones, cloned{d.Clone(), i})
			}
		}
	})

	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, seq(n))
	c.Assert(clones, qt.HasLen, n/every)
	for _, cl := range clones {
		c.Assert(cl.d.MakeSliceCopy(), qt.DeepEquals, seq(cl.len))
		assertInvariants(c, cl.d)
	}
	assertInvariants(c, d)
}

func TestPrependSeqSharedDrain(t *testing.T) {
	c := qt.New(t)
	d := CopySliceToDeque([]int{10})
	var mid *Deque[int]
	d.PrependSeq(func(yield func(int) bool) {
		if !yield(1) || !yield(2) {
			return
		}
		mid = d.Clone()
		yield(3)
	})
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, []int{1, 2, 3, 10})
	// The clone was taken before the prefix was put back in order.
	c.Assert(mid.MakeSliceCopy(), qt.DeepEquals, []int{2, 1, 10})
}

func TestSeqPanicsPartway(t *testing.T) {
	c := qt.New(t)
	failing := func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
		panic("source failed")
	}

	d := CopySliceToDeque([]int{10, 11})
	c.Assert(func() { d.PrependSeq(failing) }, qt.PanicMatches, "source failed")
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, []int{1, 2, 3, 10, 11})
	assertInvariants(c, d)

	d = CopySliceToDeque([]int{10, 11})
	c.Assert(func() { d.AppendSeq(failing) }, qt.PanicMatches, "source failed")
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, []int{10, 11, 1, 2, 3})
	assertInvariants(c, d)
}

func TestAppendSelf(t *testing.T) {
	c := qt.New(t)
	d := makeRing(5, 3, seq(4))
	d.AppendSeq(d.Iter())
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, slices.Concat(seq(4), seq(4)))
	c.Assert(d.s.isUnique(), qt.IsTrue)

	d = makeRing(5, 3, seq(4))
	d.PrependSeq(d.Iter())
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, slices.Concat(seq(4), seq(4)))
	assertInvariants(c, d)
}

func TestAppendSeqStopsEarly(t *testing.T) {
	c := qt.New(t)
	d := MakeDeque[int]()
	var src iter.Seq[int] = func(yield func(int) bool) {
		for i := 1; ; i++ {
			if i > 3 || !yield(i) {
				return
			}
		}
	}
	d.AppendSeq(src)
	d.AppendSeq(src)
	c.Assert(d.MakeSliceCopy(), qt.DeepEquals, []int{1, 2, 3, 1, 2, 3})
}
