package deque

// header describes the live region of a ring buffer. Logical index i lives in
// physical slot (start+i) mod capacity.
//
// Invariants:
//   - 0 <= count <= capacity
//   - 0 <= start <= capacity. capacity itself is a valid "at boundary" slot and
//     is treated as 0 by every computation below.
type header struct {
	capacity int
	count    int
	start    int
}

// next returns the slot after s, wrapping at capacity.
func (h *header) next(s int) int {
	s++
	if s >= h.capacity {
		return s - h.capacity
	}
	return s
}

// previous returns the slot before s, wrapping at 0.
func (h *header) previous(s int) int {
	if s == 0 {
		return h.capacity - 1
	}
	return s - 1
}

// offset moves s by delta slots. |delta| must not exceed capacity.
func (h *header) offset(s, delta int) int {
	s += delta
	if s >= h.capacity {
		return s - h.capacity
	}
	if s < 0 {
		return s + h.capacity
	}
	return s
}

// slotFor maps a logical offset in [0, capacity] to its physical slot.
func (h *header) slotFor(i int) int {
	return h.offset(h.start, i)
}

// endSlot is the slot right after the last element.
func (h *header) endSlot() int { return h.slotFor(h.count) }

// free is the number of unused slots.
func (h *header) free() int { return h.capacity - h.count }

// growthTarget is the capacity to allocate when minimumCapacity does not fit.
// Geometric growth is 1.5x, rounded up.
func (h *header) growthTarget(minimumCapacity int, linearGrowth bool) int {
	if linearGrowth {
		return max(h.capacity, minimumCapacity)
	}
	return max(h.capacity+(h.capacity+1)/2, minimumCapacity)
}
