/*
Package persistent is the home of immutable persistent data structures.

Immutable persistent data structures can be copied and "modified" efficiently,
leaving the original unchanged. Functional programming languages like Lisp have long
relied on them, with the cons list as the most basic one.

Persistent data structures offer structural sharing: if two structures are mostly
copies of each other, most of the memory they take up is shared between them. For
lists this means that a list and every list built by prepending to it share all of
the original's cells. Copies are cheap in terms of space- and time-complexity, and
sharing is safe, because shared parts never change.

Immutable data structures are inherently concurrency-safe and easy to reason about.

Sub-package list implements the persistent singly-linked list.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package persistent
