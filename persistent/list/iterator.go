package list

import (
	"fmt"
	"iter"
)

// Iterator is a forward cursor over a list.
//
// Iterating a list is safe while other goroutines read (or iterate) the same list
// or lists sharing cells with it.
type Iterator[A any] struct {
	cursor *cell[A]
}

// Iterator returns an iterator positioned at the first element of l.
func (l List[A]) Iterator() *Iterator[A] {
	return &Iterator[A]{cursor: l.c}
}

// IteratorAt returns an iterator positioned at the element with index i. For
// i = l.Len() the iterator is positioned past the last element. It returns
// ErrIndexOutOfRange for i < 0 or i > l.Len().
func (l List[A]) IteratorAt(i int) (*Iterator[A], error) {
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	c := l.c
	for j := i; j > 0; j-- {
		if c == nil {
			return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.Len())
		}
		c = c.tail
	}
	return &Iterator[A]{cursor: c}, nil
}

// HasNext is true if a call to Next will return an element.
func (it *Iterator[A]) HasNext() bool {
	return it.cursor != nil
}

// Next returns the element under the cursor and advances the cursor. Calling Next
// after the last element has been delivered returns ErrExhaustedIterator.
func (it *Iterator[A]) Next() (A, error) {
	if it.cursor == nil {
		var zero A
		return zero, ErrExhaustedIterator
	}
	x := it.cursor.head
	it.cursor = it.cursor.tail
	return x, nil
}

// All returns an iterator over the elements of l, usable with range:
//
//	for x := range l.All() { … }
func (l List[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for c := l.c; c != nil; c = c.tail {
			if !yield(c.head) {
				return
			}
		}
	}
}

// Enumerate returns an iterator over index/element pairs of l.
func (l List[A]) Enumerate() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		i := 0
		for c := l.c; c != nil; c = c.tail {
			if !yield(i, c.head) {
				return
			}
			i++
		}
	}
}

// --- Indexing --------------------------------------------------------------

// Get returns the element at position i, counting from 0. It walks the list, thus
// is O(i). For i < 0 or i ≥ l.Len() it returns ErrIndexOutOfRange.
func (l List[A]) Get(i int) (A, error) {
	var zero A
	if i < 0 {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	c := l.c
	for j := i; j > 0 && c != nil; j-- {
		c = c.tail
	}
	if c == nil {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.Len())
	}
	return c.head, nil
}

// IndexFunc returns the position of the first element satisfying pred, or -1.
func (l List[A]) IndexFunc(pred func(A) bool) int {
	i := 0
	for c := l.c; c != nil; c = c.tail {
		if pred(c.head) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexFunc returns the position of the last element satisfying pred, or -1.
func (l List[A]) LastIndexFunc(pred func(A) bool) int {
	last, i := -1, 0
	for c := l.c; c != nil; c = c.tail {
		if pred(c.head) {
			last = i
		}
		i++
	}
	return last
}

// IndexOf returns the position of the first occurrence of x in l, or -1.
// For element types which may be nil, a nil x matches nil elements only.
func IndexOf[A comparable](l List[A], x A) int {
	return l.IndexFunc(func(y A) bool { return y == x })
}

// LastIndexOf returns the position of the last occurrence of x in l, or -1.
func LastIndexOf[A comparable](l List[A], x A) int {
	return l.LastIndexFunc(func(y A) bool { return y == x })
}

// Contains is true if x is an element of l.
func Contains[A comparable](l List[A], x A) bool {
	return IndexOf(l, x) >= 0
}
