package list

import (
	"errors"
	"fmt"
)

// ErrExhaustedIterator is returned by Iterator.Next after the last element.
var ErrExhaustedIterator = errors.New("iterator exhausted")

// ErrIndexOutOfRange is returned for a negative index or an index not less than
// the length of a list.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInvalidRange is returned for a malformed range [from,to). It wraps
// ErrIndexOutOfRange, i.e. errors.Is(err, ErrIndexOutOfRange) holds for it as well.
var ErrInvalidRange = fmt.Errorf("invalid range (%w)", ErrIndexOutOfRange)

// ErrUnsupportedMutation is returned for any attempt to replace, insert or
// remove an element in place. Lists are immutable.
var ErrUnsupportedMutation = errors.New("list is immutable")

// ErrTypeMismatch is returned by Convert if an element does not have the
// target type.
var ErrTypeMismatch = errors.New("element type mismatch")
