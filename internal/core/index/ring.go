package index

// DefaultQueueCapacity is the processing queue size used when none is configured.
const DefaultQueueCapacity = 100

// Ring is a fixed-capacity FIFO over a circular buffer. A full ring rejects
// new items instead of growing.
type Ring[T any] struct {
	items []T
	front int
	rear  int
	size  int
}

// NewRing returns an empty ring holding at most capacity items.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Ring[T]{items: make([]T, capacity), rear: -1}
}

// Enqueue adds item at the rear. It returns false when the ring is full.
func (r *Ring[T]) Enqueue(item T) bool {
	if r.size == len(r.items) {
		return false
	}
	r.rear = (r.rear + 1) % len(r.items)
	r.items[r.rear] = item
	r.size++
	return true
}

// Dequeue removes and returns the oldest item. ok is false when empty.
func (r *Ring[T]) Dequeue() (item T, ok bool) {
	if r.size == 0 {
		return item, false
	}
	item = r.items[r.front]
	var zero T
	r.items[r.front] = zero
	r.front = (r.front + 1) % len(r.items)
	r.size--
	return item, true
}

func (r *Ring[T]) Len() int { return r.size }
func (r *Ring[T]) Cap() int { return len(r.items) }
