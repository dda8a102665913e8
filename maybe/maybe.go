/*
Package maybe implements optional values.

A Maybe either holds a value (Just) or it doesn't (Nothing). Clients will usually
match on both cases:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
	    fmt.Println(v)
	case m.Nothing():
	    fmt.Println("nothing")
	}

or fall back to a default with WithDefault.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Get() (T, bool)
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Match returns a matcher for m. Matchers compare by identity, so matching works
// for every T, including non-comparable ones like slices.
func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: &m}
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Get returns the wrapped value and true, or the zero value and false for Nothing.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m *maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
