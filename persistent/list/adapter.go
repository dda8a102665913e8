package list

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Sequence is the protocol of ordered, read-only sequences List conforms to.
// Containment is tested with IndexFunc, which returns -1 for absent elements.
type Sequence[A any] interface {
	Len() int
	Get(int) (A, error)
	All() iter.Seq[A]
	IndexFunc(func(A) bool) int
	SubList(from, to int) ([]A, error)
}

// Mutable is the protocol of sequences with positional mutation. List implements
// it only to reject every call with ErrUnsupportedMutation.
type Mutable[A any] interface {
	Sequence[A]
	Set(int, A) (A, error)
	Insert(int, A) error
	Remove(int) (A, error)
}

var _ Sequence[int] = List[int]{}
var _ Mutable[int] = List[int]{}

// Set is not supported and always returns ErrUnsupportedMutation.
func (l List[A]) Set(i int, x A) (A, error) {
	var zero A
	return zero, fmt.Errorf("set at %d: %w", i, ErrUnsupportedMutation)
}

// Insert is not supported and always returns ErrUnsupportedMutation.
func (l List[A]) Insert(i int, x A) error {
	return fmt.Errorf("insert at %d: %w", i, ErrUnsupportedMutation)
}

// Remove is not supported and always returns ErrUnsupportedMutation.
func (l List[A]) Remove(i int) (A, error) {
	var zero A
	return zero, fmt.Errorf("remove at %d: %w", i, ErrUnsupportedMutation)
}

// --- Slices ----------------------------------------------------------------

// ToSlice returns a new slice holding the elements of l.
func (l List[A]) ToSlice() []A {
	return l.CopyInto(nil)
}

// CopyInto copies the elements of l into dst and returns the filled part of it.
// If dst is too small to hold all elements, a new slice is allocated instead.
// If dst is larger than needed, the slot following the last element is set to
// the zero value of A, marking the end of the list's elements.
func (l List[A]) CopyInto(dst []A) []A {
	i, c := 0, l.c
	for c != nil && i < len(dst) {
		dst[i] = c.head
		c = c.tail
		i++
	}
	if c == nil {
		if i < len(dst) {
			var zero A
			dst[i] = zero
		}
		return dst[:i]
	}
	return l.CopyInto(make([]A, l.Len()))
}

// SubList returns the elements at positions [from,to) of l as a new slice.
// It returns ErrInvalidRange if from < 0, to > l.Len() or from > to.
func (l List[A]) SubList(from, to int) ([]A, error) {
	if from < 0 || from > to || to > l.Len() {
		return nil, fmt.Errorf("%w: [%d,%d)", ErrInvalidRange, from, to)
	}
	s := make([]A, 0, to-from)
	i := 0
	for c := l.c; c != nil && i < to; c = c.tail {
		if i >= from {
			s = append(s, c.head)
		}
		i++
	}
	return s, nil
}

// --- Formatting ------------------------------------------------------------

// Join renders the elements of l, separated by sep. Elements are formatted
// with %v.
func (l List[A]) Join(sep string) string {
	if l.c == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", l.c.head)
	for c := l.c.tail; c != nil; c = c.tail {
		b.WriteString(sep)
		fmt.Fprintf(&b, "%v", c.head)
	}
	return b.String()
}

// String renders the elements of l separated by commas.
func (l List[A]) String() string {
	return l.Join(",")
}

// --- Conversion ------------------------------------------------------------

// Convert re-types the elements of l to B. Every element is checked before a
// result is built; if any element is not of type B, ErrTypeMismatch is returned.
//
// If A and B are the same type, l itself is returned. Otherwise the result
// consists of new cells, as Go cannot re-interpret the cells of l.
func Convert[B, A any](l List[A]) (List[B], error) {
	if same, ok := any(l).(List[B]); ok {
		return same, nil
	}
	i := 0
	for c := l.c; c != nil; c = c.tail {
		if _, ok := convertTo[B](c.head); !ok {
			return List[B]{}, fmt.Errorf("%w: element %d is %T, not %v", ErrTypeMismatch, i,
				c.head, reflect.TypeFor[B]())
		}
		i++
	}
	ch := &chain[B]{}
	for c := l.c; c != nil; c = c.tail {
		b, _ := convertTo[B](c.head)
		ch.pushBack(b)
	}
	tracer().Debugf("converted list of %d elements to %v", ch.size, reflect.TypeFor[B]())
	return ch.publish(Nil[B]()), nil
}

// convertTo asserts x to be of type B. A nil x converts to the zero value of every
// B which has nil as its zero value.
func convertTo[B any](x any) (B, bool) {
	if b, ok := x.(B); ok {
		return b, true
	}
	var zero B
	if x != nil {
		return zero, false
	}
	switch reflect.TypeFor[B]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return zero, true
	}
	return zero, false
}
