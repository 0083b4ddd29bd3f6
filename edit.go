package deque

import (
	"iter"
	"slices"
)

// Insert inserts ts before the element at index i, so that ts[0] ends up at
// index i. Insert(0, t) is PrependSlice and Insert(d.Len(), t) is AppendSlice.
// Panics if i is outside [0, d.Len()].
//
// Only the shorter side of the Deque moves: the cost is
// O(min(i, d.Len()-i) + len(ts)). ts must not alias the Deque's own storage.
func (d *Deque[T]) Insert(i int, ts ...T) {
	d.checkInsertion(i)
	n := len(ts)
	if n == 0 {
		return
	}
	s := d.ensureUnique(d.Len()+n, false)
	copyIn(s.buf, s.openGap(i, n), ts)
}

// InsertSeq inserts the elements of seq before index i, in order. The sequence
// is collected first because opening a gap needs its length.
func (d *Deque[T]) InsertSeq(i int, seq iter.Seq[T]) {
	d.checkInsertion(i)
	d.Insert(i, slices.Collect(seq)...)
}

// Remove removes and returns the element at index i, moving the shorter side
// of the Deque over it. Panics if i is out of bounds.
func (d *Deque[T]) Remove(i int) T {
	d.checkBounds(i)
	s := d.ensureUnique(0, false)
	t := s.buf[s.slotFor(i)]
	s.closeGap(i, i+1)
	return t
}

// RemoveRange removes the elements d[i:j]. It has the same semantics as
// slices.Delete and costs O(min(i, d.Len()-j) + j-i). Panics if d[i:j] is not
// a valid range.
func (d *Deque[T]) RemoveRange(i, j int) {
	d.checkRange(i, j)
	if i == j {
		return
	}
	d.ensureUnique(0, false).closeGap(i, j)
}

// Replace replaces the elements d[i:j] with ts. It has the same semantics as
// slices.Replace. The common prefix is overwritten in place; the surplus is
// then removed or a gap is opened for the rest of ts. Panics if d[i:j] is not
// a valid range. ts must not alias the Deque's own storage.
func (d *Deque[T]) Replace(i, j int, ts ...T) {
	d.checkRange(i, j)
	removed, n := j-i, len(ts)
	if removed == 0 && n == 0 {
		return
	}
	common := min(removed, n)
	delta := n - removed

	s := d.ensureUnique(d.Len()+max(delta, 0), false)
	copyIn(s.buf, s.segmentsFor(i, i+common), ts[:common])
	switch {
	case delta < 0:
		s.closeGap(i+common, j)
	case delta > 0:
		copyIn(s.buf, s.openGap(j, delta), ts[common:])
	}
}

// ReplaceSeq is Replace for a sequence whose length is only discovered while
// draining it. Elements overwrite d[i:j] as they arrive; whatever is left of
// the range is removed, and whatever is left of seq is inserted at j.
func (d *Deque[T]) ReplaceSeq(i, j int, seq iter.Seq[T]) {
	d.checkRange(i, j)
	pos := i
	var rest []T
	for t := range seq {
		if pos < j {
			s := d.ensureUnique(0, false)
			s.buf[s.slotFor(pos)] = t
			pos++
			continue
		}
		rest = append(rest, t)
	}
	switch {
	case pos < j:
		d.RemoveRange(pos, j)
	case len(rest) > 0:
		d.Insert(j, rest...)
	}
}
