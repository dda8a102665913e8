/*
Package list implements an immutable persistent singly-linked list.

A list is a chain of cons cells, each holding a head value and a link to the rest
of the list. The empty list is a single terminal value, the zero value of List.
Every traversal therefore is a single loop until the empty tail:

	for l := xs; l.NonEmpty(); l = l.Tail() {
	    fmt.Println(l.Head())
	}

Lists are persistent: no operation changes a list a client holds. Instead, cells are
shared between lists wherever this is safe. Prepending an element allocates exactly
one cell and re-uses the whole original list as its tail:

	xs := list.Of(2, 3)
	ys := xs.Prepend(1)     // ys = (1,2,3), ys.Tail() == xs

Operations which have to copy cells (Reverse, PrependList, Append) allocate each cell
once at most. PrependList builds a reversed copy of its argument and then re-links
those fresh cells onto the receiver, without a second round of allocations. Re-linking
a cell is possible only while the cell is privately owned by the operation building
it; once a list is handed out to a client, none of its cells will ever change again.

Immutable lists are inherently concurrency-safe. Any number of goroutines may read
lists sharing the same cells without any locking.

# Status

The list is the primary general-purpose container in programs preferring linked
structures over slices. Adapters to slices, iter.Seq and JSON/YAML are provided.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
