package list

/*
Remarks:
--------

- Cells are immutable as soon as they are reachable from a List handle. The one and
  only place where a cell's tail is written after allocation is type chain.

- A chain owns a run of freshly allocated cells. No List may point into a chain
  before the chain is published. Publishing (or re-linking a chain onto an existing
  list) consumes the chain; a consumed chain refuses any further operation.

*/

// cell is a cons cell. The empty list is represented by a nil cell pointer.
type cell[A any] struct {
	head A
	tail *cell[A]
}

// chain is a run of cells owned exclusively by the operation building it.
type chain[A any] struct {
	first    *cell[A] // first cell of the run, nil for an empty run
	last     *cell[A] // last cell of the run; its tail is nil until publication
	size     int
	consumed bool
}

// pushBack appends a new cell at the end of the chain, re-linking the
// formerly last cell. This is legal because no-one else can see the chain yet.
func (ch *chain[A]) pushBack(x A) {
	assertThat(!ch.consumed, "attempt to extend a published chain")
	c := &cell[A]{head: x}
	if ch.first == nil {
		ch.first = c
	} else {
		ch.last.tail = c
	}
	ch.last = c
	ch.size++
}

// publish terminates the chain with the cells of tail and hands it out as a list.
// The chain is consumed afterwards.
func (ch *chain[A]) publish(tail List[A]) List[A] {
	assertThat(!ch.consumed, "attempt to publish a chain twice")
	ch.consumed = true
	if ch.first == nil {
		return tail
	}
	ch.last.tail = tail.c
	l := List[A]{c: ch.first}
	ch.first, ch.last = nil, nil
	return l
}

// reverseOnto re-links every cell of the chain, in reverse order, in front of tail.
// For a chain (x1 … xn) the result is (xn … x1 · tail). No cell is allocated.
// The chain is consumed afterwards.
func (ch *chain[A]) reverseOnto(tail List[A]) List[A] {
	assertThat(!ch.consumed, "attempt to re-link a published chain")
	ch.consumed = true
	result := tail.c
	rev := ch.first
	for rev != nil {
		h := rev
		rev = rev.tail
		h.tail = result
		result = h
	}
	tracer().Debugf("re-linked %d private cells onto existing list", ch.size)
	ch.first, ch.last = nil, nil
	return List[A]{c: result}
}

// reversedCopy creates a private chain holding the elements of l in reverse order.
// The chain never shares a cell with l.
func reversedCopy[A any](l List[A]) *chain[A] {
	ch := &chain[A]{}
	if l.c == nil {
		return ch
	}
	ch.last = &cell[A]{head: l.c.head}
	ch.first = ch.last
	ch.size = 1
	for c := l.c.tail; c != nil; c = c.tail {
		ch.first = &cell[A]{head: c.head, tail: ch.first}
		ch.size++
	}
	return ch
}
