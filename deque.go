package deque

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
)

// Deque is a double-ended queue that can be used for either LIFO or FIFO
// ordering, or something in between. It also supports O(1) random access and
// insertion or removal in the middle, which moves only the shorter side.
//
// The elements live in a single ring buffer that several Deque handles can
// share. Clone returns a new handle in O(1); the first handle to mutate shared
// storage copies it first, so handles never observe each other's changes.
//
// The zero value is an empty Deque ready to use, and an empty Deque never
// allocates. A Deque must not be copied by value after first use; use Clone:
//
//	b := a      // wrong, a and b would mutate the same storage
//	b := a.Clone()
//
// The buffer grows by 1.5x when full. Capacity never shrinks except through
// Reset. A Deque is not safe for concurrent mutation, but distinct handles
// sharing storage may be used from different goroutines.
type Deque[T any] struct {
	_ noCopy
	s *storage[T]
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque returns an empty Deque. It does not allocate a buffer.
func MakeDeque[T any]() *Deque[T] {
	return new(Deque[T])
}

// MakeDequeWithCapacity returns an empty Deque able to hold capacity elements
// without reallocating. Panics if capacity is negative.
func MakeDequeWithCapacity[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("deque: negative capacity %d", capacity))
	}
	d := new(Deque[T])
	if capacity > 0 {
		d.s = newStorage[T](capacity)
	}
	return d
}

// Clone returns a Deque with the same contents in O(1). Storage is shared until
// either handle mutates.
func (d *Deque[T]) Clone() *Deque[T] {
	c := new(Deque[T])
	if d != nil && d.s != nil {
		c.s = d.s.retain()
	}
	return c
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil || d.s == nil {
		return 0
	}
	return d.s.count
}

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.Len() == 0 }

// Full returns whether the Deque is full. Pushing to a full Deque reallocates.
func (d *Deque[T]) Full() bool { return d.Len() == d.Cap() }

// PushBack takes in a variable number of arguments and puts them at the back
// of the Deque. Use PushBack and PopFront for FIFO ordering, or PushBack and
// PopBack for LIFO ordering.
//
// PushBack reallocates at most once, no matter how many arguments. The last
// argument is the new back of the list.
func (d *Deque[T]) PushBack(ts ...T) {
	if len(ts) == 1 {
		s := d.ensureUnique(d.Len()+1, false)
		s.buf[s.endSlot()] = ts[0]
		s.count++
		return
	}
	d.AppendSlice(ts)
}

// PushFront takes in a variable number of arguments and puts them at the front
// of the Deque, one after the other.
//
// PushFront reallocates at most once, no matter how many arguments. The last
// argument is the new front of the list. Use PrependSlice to keep the order of
// the arguments instead.
func (d *Deque[T]) PushFront(ts ...T) {
	if len(ts) == 0 {
		return
	}
	s := d.ensureUnique(d.Len()+len(ts), false)
	for _, t := range ts {
		s.start = s.previous(s.start)
		s.buf[s.start] = t
		s.count++
	}
}

// PeekBack returns the last element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) PeekBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	s := d.s
	return s.buf[s.slotFor(s.count-1)], true
}

// PeekFront returns the first element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) PeekFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.s.buf[d.s.slotFor(0)], true
}

// PopBack removes the last element in the Deque and returns it. If it's empty,
// returns false. The vacated slot is zeroed.
func (d *Deque[T]) PopBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	s := d.ensureUnique(0, false)
	i := s.slotFor(s.count - 1)
	t, s.buf[i] = s.buf[i], t
	s.count--
	return t, true
}

// PopFront removes the first element in the Deque and returns it. If it's
// empty, returns false. The vacated slot is zeroed.
func (d *Deque[T]) PopFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	s := d.ensureUnique(0, false)
	i := s.slotFor(0)
	t, s.buf[i] = s.buf[i], t
	s.start = s.next(i)
	s.count--
	return t, true
}

// RemoveFirst removes and returns the first element. Panics if the Deque is
// empty.
func (d *Deque[T]) RemoveFirst() T {
	t, ok := d.PopFront()
	if !ok {
		panic("deque: RemoveFirst on empty Deque")
	}
	return t
}

// RemoveLast removes and returns the last element. Panics if the Deque is
// empty.
func (d *Deque[T]) RemoveLast() T {
	t, ok := d.PopBack()
	if !ok {
		panic("deque: RemoveLast on empty Deque")
	}
	return t
}

// DropFront removes the n first elements of the Deque in O(n). If the Deque
// has fewer than n elements, it drops every element. If n is negative, no
// element is dropped.
func (d *Deque[T]) DropFront(n int) {
	if n > 0 {
		d.RemoveRange(0, min(n, d.Len()))
	}
}

// DropBack removes the n last elements of the Deque in O(n). If the Deque has
// fewer than n elements, it drops every element. If n is negative, no element
// is dropped.
func (d *Deque[T]) DropBack(n int) {
	if n > 0 {
		l := d.Len()
		d.RemoveRange(l-min(n, l), l)
	}
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Cap returns the current Deque capacity.
func (d *Deque[T]) Cap() int {
	if d == nil || d.s == nil {
		return 0
	}
	return d.s.capacity
}

// Reserve ensures there's enough capacity to add at least n more elements to
// the Deque, reallocating if necessary. It has the same semantics as
// slices.Grow and panics if n is negative.
func (d *Deque[T]) Reserve(n int) {
	if n < 0 {
		panic(fmt.Sprintf("deque: negative Reserve %d", n))
	}
	d.ReserveCapacity(d.Len() + n)
}

// ReserveCapacity ensures the Deque can hold at least capacity elements in
// total. Unlike growth triggered by pushes, it allocates exactly what was asked
// for. Panics if capacity is negative.
func (d *Deque[T]) ReserveCapacity(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("deque: negative capacity %d", capacity))
	}
	d.ensureUnique(capacity, true)
}

// Helper to reuse the slices package functions.
func (d *Deque[T]) slices() (a, b []T) {
	if d.Empty() {
		return nil, nil
	}
	return views(d.s.buf, d.s.segments())
}

// MakeSliceCopy allocates a slice to hold every Deque element and copies them.
// Prefer passing a buffer to CopySlice for memory reuse.
func (d *Deque[T]) MakeSliceCopy() []T {
	s := make([]T, d.Len())
	_ = d.CopySlice(0, s)
	return s
}

// MakeSliceIndexCopy allocates a slice and copies the contents from the start
// index (inclusive) to the end index (non-inclusive). This is regular slice
// semantics, except it's a copy, and doesn't share memory with the Deque. This
// means it also panics with invalid indexes.
func (d *Deque[T]) MakeSliceIndexCopy(start, end int) []T {
	d.checkRange(start, end)
	s := make([]T, end-start)
	_ = d.CopySlice(start, s)
	return s
}

// MakeSliceIndexCopyWithCapacity allocates a slice and copies the contents
// from the start index (inclusive) to the end index (non-inclusive). The extra
// capacity is filled with zeroes.
//
// Use this method when you need to append to the slice after copying it.
func (d *Deque[T]) MakeSliceIndexCopyWithCapacity(start, end, capacity int) []T {
	d.checkRange(start, end)
	s := make([]T, end-start, max(capacity, end-start))
	_ = d.CopySlice(start, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements in the Deque starting at the start index up until the buffer is
// full or the Deque is over, whichever happens first.
//
// CopySlice returns the number of elements copied, which will be the minimum
// of len(buf) and d.Len()-start. Panics if start is outside [0, d.Len()].
func (d *Deque[T]) CopySlice(start int, buf []T) int {
	l := d.Len()
	if start < 0 || start > l {
		panic(fmt.Sprintf("deque: start %d out of bounds with length %d", start, l))
	}
	n := min(len(buf), l-start)
	if n == 0 {
		return 0
	}
	return copyOut(d.s.buf, d.s.segmentsFor(start, start+n), buf)
}

// At indexes into the i-th position in the Deque. Panics if out of bounds.
func (d *Deque[T]) At(i int) T {
	d.checkBounds(i)
	return d.s.buf[d.s.slotFor(i)]
}

// Set writes t to the i-th position in the Deque. Panics if out of bounds.
func (d *Deque[T]) Set(i int, t T) {
	d.checkBounds(i)
	s := d.ensureUnique(0, false)
	s.buf[s.slotFor(i)] = t
}

// Swap swaps the elements in the i-th and j-th indexes. Panics if out of
// bounds.
func (d *Deque[T]) Swap(i, j int) {
	d.checkBounds(i)
	d.checkBounds(j)
	s := d.ensureUnique(0, false)
	a, b := s.slotFor(i), s.slotFor(j)
	s.buf[a], s.buf[b] = s.buf[b], s.buf[a]
}

// Clear empties the Deque in O(d.Len()), zeroing existing elements and
// maintaining capacity. If the storage is shared, Clear allocates fresh
// storage of the same capacity instead of touching the shared one.
func (d *Deque[T]) Clear() {
	if d.Empty() {
		return
	}
	s := d.s
	if !s.isUnique() {
		d.adopt(newStorage[T](s.capacity))
		return
	}
	clearSegments(s.buf, s.segments())
	s.count, s.start = 0, 0
}

// Reset empties the Deque and drops its storage, bringing the capacity back to
// zero. This is the only operation that lowers capacity. Resetting the last
// handle of a storage destroys its elements.
func (d *Deque[T]) Reset() {
	d.adopt(nil)
}

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It has
// the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	return Index(d, t) != -1
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	return d.IndexFunc(f) != -1
}

// Equal returns whether both Deques have the same length and the same elements
// in the same order. Two nil Deques are equal, but an empty Deque and nil are
// not. This must not be a method, otherwise Deque would be constrained to
// comparable elements.
func Equal[T comparable](d1 *Deque[T], d2 *Deque[T]) bool {
	return equalChunks(d1, d2, slices.Equal[[]T])
}

// EqualFunc returns whether both Deques have the same length and the same
// elements in the same order according to f. Two nil Deques are equal, but an
// empty Deque and nil are not.
func (d1 *Deque[T]) EqualFunc(d2 *Deque[T], f func(T, T) bool) bool {
	return equalChunks(d1, d2, func(a, b []T) bool {
		return slices.EqualFunc(a, b, f)
	})
}

// equalChunks walks both Deques in lockstep, comparing the longest runs that
// are contiguous in both buffers.
func equalChunks[T any](d1, d2 *Deque[T], eq func(a, b []T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.Len() != d2.Len() {
		return false
	}
	if d1.s == d2.s {
		return true
	}

	x1, x2 := d1.slices()
	y1, y2 := d2.slices()
	for {
		if len(x1) == 0 {
			x1, x2 = x2, nil
		}
		if len(y1) == 0 {
			y1, y2 = y2, nil
		}
		if len(x1) == 0 || len(y1) == 0 {
			return len(x1) == len(y1)
		}
		n := min(len(x1), len(y1))
		if !eq(x1[:n], y1[:n]) {
			return false
		}
		x1, y1 = x1[n:], y1[n:]
	}
}

// Hash returns a hash of the Deque's length and elements in order. Equal
// Deques hash equally under the same seed.
func Hash[T comparable](seed maphash.Seed, d *Deque[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, d.Len())
	a, b := d.slices()
	for _, t := range a {
		maphash.WriteComparable(&h, t)
	}
	for _, t := range b {
		maphash.WriteComparable(&h, t)
	}
	return h.Sum64()
}

// Index returns the index of the first ocurrence of t in the Deque or -1 if
// absent. It cannot be a method, otherwise Deque would be constrained to
// comparable elements only. Index has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], t T) int {
	s1, s2 := d.slices()
	i := slices.Index(s1, t)
	if i != -1 {
		return i
	}
	i = slices.Index(s2, t)
	if i != -1 {
		return i + len(s1)
	}
	return -1
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do. IndexFunc has the same semantics as
// slices.IndexFunc.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	s1, s2 := d.slices()
	i := slices.IndexFunc(s1, f)
	if i != -1 {
		return i
	}
	i = slices.IndexFunc(s2, f)
	if i != -1 {
		return i + len(s1)
	}
	return -1
}

// Max returns the maximum element in the Deque. It must not be a method,
// otherwise Deque would be constrained to ordered elements only. Like
// slices.Max, it panics on an empty Deque.
func Max[T cmp.Ordered](d *Deque[T]) T {
	return d.MaxFunc(cmp.Compare[T])
}

// MaxFunc returns the maximal element in the Deque using cmp to compare
// elements. If there are multiple maximal elements, it returns the first one.
// It panics on an empty Deque.
func (d *Deque[T]) MaxFunc(cmp func(T, T) int) T {
	s1, s2 := d.nonEmptySlices("MaxFunc")
	result := slices.MaxFunc(s1, cmp)
	if len(s2) > 0 {
		if m := slices.MaxFunc(s2, cmp); cmp(m, result) > 0 {
			result = m
		}
	}
	return result
}

// Min returns the minimum element in the Deque. It must not be a method,
// otherwise Deque would be constrained to ordered elements only. Like
// slices.Min, it panics on an empty Deque.
func Min[T cmp.Ordered](d *Deque[T]) T {
	return d.MinFunc(cmp.Compare[T])
}

// MinFunc returns the minimal element in the Deque using cmp to compare
// elements. If there are multiple minimal elements, it returns the first one.
// It panics on an empty Deque.
func (d *Deque[T]) MinFunc(cmp func(T, T) int) T {
	s1, s2 := d.nonEmptySlices("MinFunc")
	result := slices.MinFunc(s1, cmp)
	if len(s2) > 0 {
		if m := slices.MinFunc(s2, cmp); cmp(m, result) < 0 {
			result = m
		}
	}
	return result
}

// ForEach takes in a function that returns a bool and calls it in order for
// every element in the queue, or until the first call that returns false.
func (d *Deque[T]) ForEach(f func(T) bool) {
	for t := range d.Iter() {
		if !f(t) {
			return
		}
	}
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Iter instead.
//
// The iterator walks a snapshot: mutating the Deque during iteration is
// allowed and makes the Deque copy its storage once, leaving the elements
// being iterated untouched.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s1, s2, done := d.snapshot()
		defer done()
		for i, t := range s1 {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range s2 {
			if !yield(len(s1)+i, t) {
				return
			}
		}
	}
}

// Iter returns an iterator over values only in order. If you need indexes,
// use All instead. Iter walks a snapshot, like All.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		s1, s2, done := d.snapshot()
		defer done()
		for _, t := range s1 {
			if !yield(t) {
				return
			}
		}
		for _, t := range s2 {
			if !yield(t) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the back to the
// front. It has the same semantics as slices.Backward and walks a snapshot,
// like All.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s1, s2, done := d.snapshot()
		defer done()
		for i := len(s2) - 1; i >= 0; i-- {
			if !yield(len(s1)+i, s2[i]) {
				return
			}
		}
		for i := len(s1) - 1; i >= 0; i-- {
			if !yield(i, s1[i]) {
				return
			}
		}
	}
}

// snapshot pins the current storage so in-place mutation cannot change what
// an iterator yields. done must be called when iteration stops.
func (d *Deque[T]) snapshot() (a, b []T, done func()) {
	if d.Empty() {
		return nil, nil, func() {}
	}
	s := d.s.retain()
	a, b = views(s.buf, s.segments())
	return a, b, s.release
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// noCopy lets go vet's copylocks check flag Deque values copied after use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func (d *Deque[T]) nonEmptySlices(op string) (a, b []T) {
	if d.Empty() {
		panic("deque: " + op + " of empty Deque")
	}
	return d.slices()
}

func (d *Deque[T]) checkBounds(i int) {
	if i < 0 || i >= d.Len() {
		panic(fmt.Sprintf("deque: index %d out of bounds with length %d", i, d.Len()))
	}
}

// checkInsertion accepts i == d.Len(), the position after the last element.
func (d *Deque[T]) checkInsertion(i int) {
	if i < 0 || i > d.Len() {
		panic(fmt.Sprintf("deque: insertion index %d out of bounds with length %d", i, d.Len()))
	}
}

func (d *Deque[T]) checkRange(i, j int) {
	if i < 0 || j < i || j > d.Len() {
		panic(fmt.Sprintf("deque: range [%d:%d] out of bounds with length %d", i, j, d.Len()))
	}
}
