package ds

// Ring is a fixed-capacity circular buffer that is always full: every slot
// holds a value from construction onward. The tail is the current slot and
// the head is the slot immediately after it in circular order, which is the
// oldest retained value.
type Ring[T any] struct {
	slots []T
	tail  int
}

// NewRing returns a ring with capacity slots, each initialized to fill.
func NewRing[T any](capacity int, fill T) *Ring[T] {
	slots := make([]T, capacity)
	for i := range slots {
		slots[i] = fill
	}
	return &Ring[T]{slots: slots}
}

// Len returns the number of slots.
func (r *Ring[T]) Len() int {
	return len(r.slots)
}

// Head returns the oldest retained value.
func (r *Ring[T]) Head() T {
	return r.slots[r.next(r.tail)]
}

// Tail returns the value in the current slot.
func (r *Ring[T]) Tail() T {
	return r.slots[r.tail]
}

// SetTail overwrites the current slot.
func (r *Ring[T]) SetTail(v T) {
	r.slots[r.tail] = v
}

// Advance moves the tail to the next slot, recycling the old head. The new
// tail is seeded with the previous tail value so the ring stays full.
func (r *Ring[T]) Advance() {
	prev := r.tail
	r.tail = r.next(r.tail)
	r.slots[r.tail] = r.slots[prev]
}

func (r *Ring[T]) next(i int) int {
	if i+1 < len(r.slots) {
		return i + 1
	}
	return 0
}
