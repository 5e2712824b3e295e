package ds

// Stack is a growable LIFO over a contiguous backing array. The array is
// managed through an explicit length so capacity survives pops; it grows to
// (n*3/2)+1 when full and never shrinks.
type Stack[T any] struct {
	data   []T
	length int
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Len() int {
	return s.length
}

func (s *Stack[T]) IsEmpty() bool {
	return s.length == 0
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.length == 0 {
		var zero T
		return zero, false
	}
	return s.data[s.length-1], true
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	if s.length == 0 {
		var zero T
		return zero, false
	}
	s.length--
	return s.data[s.length], true
}

func (s *Stack[T]) Push(item T) {
	if s.length == len(s.data) {
		grown := make([]T, s.length*3/2+1)
		copy(grown, s.data)
		s.data = grown
	}
	s.data[s.length] = item
	s.length++
}
