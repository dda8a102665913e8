package list

import (
	"hash/maphash"
	"iter"
)

// Equal compares two lists element-wise. Lists of different length are never equal.
// Comparison stops at the first pair of differing elements.
//
// Elements are compared with ==, which panics if two interface values hold the same
// non-comparable dynamic type (e.g., []int in a List[any]). Use EqualFunc for such lists.
func Equal[A comparable](xs, ys List[A]) bool {
	return EqualFunc(xs, ys, func(x, y A) bool { return x == y })
}

// EqualFunc compares two lists element-wise using eq.
func EqualFunc[A, B any](xs List[A], ys List[B], eq func(A, B) bool) bool {
	a, b := xs.c, ys.c
	for a != nil && b != nil {
		if !eq(a.head, b.head) {
			return false
		}
		a, b = a.tail, b.tail
	}
	return a == nil && b == nil
}

// EqualSlice compares a list to a slice, element-wise.
func EqualSlice[A comparable](xs List[A], s []A) bool {
	c := xs.c
	for _, y := range s {
		if c == nil || c.head != y {
			return false
		}
		c = c.tail
	}
	return c == nil
}

// EqualSeq compares a list to an arbitrary ordered sequence, element-wise.
// seq is consumed up to the first difference only.
func EqualSeq[A comparable](xs List[A], seq iter.Seq[A]) bool {
	next, stop := iter.Pull(seq)
	defer stop()
	for c := xs.c; c != nil; c = c.tail {
		y, ok := next()
		if !ok || c.head != y {
			return false
		}
	}
	_, more := next()
	return !more
}

// --- Hashing ---------------------------------------------------------------

// Hasher may be implemented by element types wishing to control the hash value
// used by Hash.
type Hasher interface {
	Hash() uint32
}

var seed = maphash.MakeSeed()

// Hash computes a hash value for a list, compatible with Equal: lists which are
// Equal have the same hash value.
//
// The hash is a left fold over the elements, h = 31·h + hash(x), starting with 1.
// The zero value of A (nil for pointer and interface types) hashes to 0. Elements
// implementing Hasher provide their own hash, all others are hashed with maphash.
// Hash values are stable during the lifetime of a process only.
//
// For interface element types, like List[any], every element's dynamic type must be
// comparable as well; Hash panics on elements like []int. Use HashFunc for such lists.
func Hash[A comparable](l List[A]) uint32 {
	var zero A
	return HashFunc(l, func(x A) uint32 {
		if x == zero {
			return 0
		}
		if h, ok := any(x).(Hasher); ok {
			return h.Hash()
		}
		u := maphash.Comparable(seed, x)
		return uint32(u ^ u>>32)
	})
}

// HashFunc computes a hash value for a list, using hash for the elements.
func HashFunc[A any](l List[A], hash func(A) uint32) uint32 {
	var h uint32 = 1
	for c := l.c; c != nil; c = c.tail {
		h = h*31 + hash(c.head)
	}
	return h
}
