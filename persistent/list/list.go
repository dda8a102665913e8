package list

import (
	"github.com/npillmayer/cons/maybe"
)

// List is an immutable persistent singly-linked list of elements of type A.
//
// The zero value is the empty list and is ready to use:
//
//	var l list.List[string]
//	l = l.Prepend("world").Prepend("hello")   // (hello,world)
//
// List values are small handles and are meant to be passed by value. Two handles
// compare equal with == if and only if they denote the very same cells.
// Use Equal for element-wise comparison.
type List[A any] struct {
	c *cell[A]
}

// Nil returns the empty list. It is the same value as List[A]{} and
// is shared by all lists of any element type as their terminal.
func Nil[A any]() List[A] {
	return List[A]{}
}

// Of creates a list of the given elements, in order.
func Of[A any](xs ...A) List[A] {
	return FromSlice(xs)
}

// FromSlice creates a list of all elements of a slice, preserving their order.
// Exactly len(xs) cells are allocated. A nil or empty slice yields the empty list.
func FromSlice[A any](xs []A) List[A] {
	var c *cell[A]
	for i := len(xs) - 1; i >= 0; i-- {
		c = &cell[A]{head: xs[i], tail: c}
	}
	return List[A]{c: c}
}

// Repeat creates a list consisting of n identical elements x.
// For n ≤ 0 the empty list is returned.
func Repeat[A any](n int, x A) List[A] {
	var c *cell[A]
	for i := 0; i < n; i++ {
		c = &cell[A]{head: x, tail: c}
	}
	return List[A]{c: c}
}

// --- Predicates ------------------------------------------------------------

// IsEmpty is true for the empty list.
func (l List[A]) IsEmpty() bool {
	return l.c == nil
}

// NonEmpty is true for a list with at least one element.
func (l List[A]) NonEmpty() bool {
	return l.c != nil
}

// Len returns the number of elements of l. Lists do not keep track of their
// length, thus this is O(n).
func (l List[A]) Len() int {
	n := 0
	for c := l.c; c != nil; c = c.tail {
		n++
	}
	return n
}

// Head returns the first element of l, or the zero value of A for an empty list.
func (l List[A]) Head() A {
	if l.c == nil {
		var zero A
		return zero
	}
	return l.c.head
}

// Tail returns l without its first element. The result shares all of its cells
// with l. The tail of the empty list is the empty list.
func (l List[A]) Tail() List[A] {
	if l.c == nil {
		return l
	}
	return List[A]{c: l.c.tail}
}

// First returns the first element of l, if any.
func (l List[A]) First() maybe.Maybe[A] {
	if l.c == nil {
		return maybe.Nothing[A]()
	}
	return maybe.Just(l.c.head)
}

// Last returns the last element of l, if any. O(n).
func (l List[A]) Last() maybe.Maybe[A] {
	if l.c == nil {
		return maybe.Nothing[A]()
	}
	c := l.c
	for c.tail != nil {
		c = c.tail
	}
	return maybe.Just(c.head)
}

// --- Construction with structural sharing ----------------------------------

// Prepend returns a new list with x in front of l. Exactly one cell is
// allocated; l is re-used as the tail of the result.
func (l List[A]) Prepend(x A) List[A] {
	return List[A]{c: &cell[A]{head: x, tail: l.c}}
}

// Reverse returns a list with the elements of l in reverse order.
//
// If l is empty or has exactly one element, l itself is returned and nothing is
// allocated. Otherwise the result consists of l.Len() new cells, none of them
// shared with l.
func (l List[A]) Reverse() List[A] {
	if l.c == nil || l.c.tail == nil {
		return l
	}
	return reversedCopy(l).publish(Nil[A]())
}

// PrependList returns a list enumerating the elements of xs followed by the
// elements of l. Neither l nor xs is changed.
//
// The result always shares all cells of l. If l is empty, xs is returned, and if xs
// is empty, l is returned. Otherwise xs.Len() cells are allocated, as the cells of xs
// cannot be re-used (they are still part of xs).
func (l List[A]) PrependList(xs List[A]) List[A] {
	switch {
	case l.c == nil:
		return xs
	case xs.c == nil:
		return l
	case xs.c.tail == nil:
		return l.Prepend(xs.c.head)
	}
	// reversedCopy creates cells private to us, so we may re-link them
	// instead of allocating a second time.
	rev := reversedCopy(xs)
	tracer().Debugf("prepend list: re-using %d reversed cells", rev.size)
	return rev.reverseOnto(l)
}

// Append returns a new list with x added at the end of l.
// All cells of l are copied, as l's last cell must not change.
func (l List[A]) Append(x A) List[A] {
	return Of(x).PrependList(l)
}

// AppendList returns a list enumerating the elements of l followed by the
// elements of ys. All cells of ys are shared with the result.
func (l List[A]) AppendList(ys List[A]) List[A] {
	return ys.PrependList(l)
}
