package deque

import "iter"

// CopySliceToDeque takes in a slice, allocates a buffer of exactly len(s)
// elements, and copies every element of the slice to the Deque. The slice's
// capacity is irrelevant to CopySliceToDeque, and memory is not shared.
func CopySliceToDeque[T any](s []T) *Deque[T] {
	d := MakeDequeWithCapacity[T](len(s))
	if len(s) > 0 {
		d.s.count = copy(d.s.buf, s)
	}
	return d
}

// CollectDeque drains seq into a new Deque, growing while it goes. Use
// CopySliceToDeque when the length is known up front.
func CollectDeque[T any](seq iter.Seq[T]) *Deque[T] {
	d := new(Deque[T])
	d.AppendSeq(seq)
	return d
}

// AppendSlice puts every element of ts at the back of the Deque, in order. It
// reallocates at most once and fills the free segments directly.
func (d *Deque[T]) AppendSlice(ts []T) {
	n := len(ts)
	if n == 0 {
		return
	}
	s := d.ensureUnique(d.Len()+n, false)
	copyIn(s.buf, s.spanAt(s.endSlot(), n), ts)
	s.count += n
}

// PrependSlice puts every element of ts at the front of the Deque, keeping
// their order: ts[0] becomes the new front. It reallocates at most once.
func (d *Deque[T]) PrependSlice(ts []T) {
	n := len(ts)
	if n == 0 {
		return
	}
	s := d.ensureUnique(d.Len()+n, false)
	copyIn(s.buf, s.prependSegments(n), ts)
	s.start = s.offset(s.start, -n)
	s.count += n
}

// AppendSeq drains seq to the back of the Deque. It fills the free capacity,
// then grows and continues, so the cost is amortized O(1) per element.
//
// Sharing is rechecked before every write: if seq clones the Deque while it is
// being drained, the next write copies the storage first.
func (d *Deque[T]) AppendSeq(seq iter.Seq[T]) {
	for t := range seq {
		s := d.s
		if s == nil || s.count == s.capacity || !s.isUnique() {
			s = d.ensureUnique(d.Len()+1, false)
		}
		s.buf[s.endSlot()] = t
		s.count++
	}
}

// PrependSeq drains seq to the front of the Deque, keeping its order: the
// first element yielded becomes the new front. Elements are pushed at the front
// one by one and the new prefix is reversed when draining stops, so no
// temporary buffer is needed. The reversal also runs if seq panics, leaving the
// elements yielded so far in order.
func (d *Deque[T]) PrependSeq(seq iter.Seq[T]) {
	n := 0
	defer func() {
		if n > 1 {
			d.reversePrefix(n)
		}
	}()
	for t := range seq {
		s := d.s
		if s == nil || s.count == s.capacity || !s.isUnique() {
			s = d.ensureUnique(d.Len()+1, false)
		}
		s.start = s.previous(s.start)
		s.buf[s.start] = t
		s.count++
		n++
	}
}

// reversePrefix reverses the first n elements in place.
func (d *Deque[T]) reversePrefix(n int) {
	s := d.ensureUnique(0, false)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a, b := s.slotFor(i), s.slotFor(j)
		s.buf[a], s.buf[b] = s.buf[b], s.buf[a]
	}
}
