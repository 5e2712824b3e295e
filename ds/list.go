package ds

type listNode[T any] struct {
	prev  *listNode[T]
	next  *listNode[T]
	value T
}

// List is a doubly linked list with head and tail access. Front operations
// make it a stack, PushBack/PopFront make it a queue.
type List[T any] struct {
	head   *listNode[T]
	tail   *listNode[T]
	length int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Len() int {
	return l.length
}

// Empty drops every node from the list.
func (l *List[T]) Empty() {
	l.head, l.tail = nil, nil
	l.length = 0
}

func (l *List[T]) PushFront(value T) {
	node := &listNode[T]{value: value}
	if l.head == nil {
		l.head, l.tail = node, node
	} else {
		node.next, l.head.prev, l.head = l.head, node, node
	}
	l.length++
}

func (l *List[T]) PushBack(value T) {
	node := &listNode[T]{value: value}
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		node.prev, l.tail.next, l.tail = l.tail, node, node
	}
	l.length++
}

// PopFront removes and returns the head value.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	node := l.head
	l.head = node.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.length--
	return node.value, true
}

// Front returns the head value without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Iter walks the list front to back. Mutating the list invalidates the
// iterator.
func (l *List[T]) Iter() *ListIter[T] {
	return &ListIter[T]{next: l.head}
}

type ListIter[T any] struct {
	next *listNode[T]
}

func (it *ListIter[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	value := it.next.value
	it.next = it.next.next
	return value, true
}
