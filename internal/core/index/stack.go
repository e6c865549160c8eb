package index

// DefaultUndoCapacity is the undo stack size used when none is configured.
const DefaultUndoCapacity = 50

// Stack is a fixed-capacity LIFO. Pushing onto a full stack is rejected;
// older entries are never evicted.
type Stack[T any] struct {
	items []T
	top   int
}

func NewStack[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		capacity = DefaultUndoCapacity
	}
	return &Stack[T]{items: make([]T, capacity), top: -1}
}

// Push reports false when the stack is full.
func (s *Stack[T]) Push(item T) bool {
	if s.top == len(s.items)-1 {
		return false
	}
	s.top++
	s.items[s.top] = item
	return true
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if s.top < 0 {
		return item, false
	}
	item = s.items[s.top]
	var zero T
	s.items[s.top] = zero
	s.top--
	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T, ok bool) {
	if s.top < 0 {
		return item, false
	}
	return s.items[s.top], true
}

func (s *Stack[T]) Len() int { return s.top + 1 }
func (s *Stack[T]) Cap() int { return len(s.items) }
