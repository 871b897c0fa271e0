package iterator

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange index or cursor is outside of the collection
	ErrOutOfRange = errors.New("out of range")

	// ErrConcurrentModification collection was modified after the iterator was created
	ErrConcurrentModification = errors.New("collection modified during iteration")

	// ErrCollectionClosed collection was closed
	ErrCollectionClosed = errors.New("collection was closed")
)

type Op int

const (
	OpGet Op = iota
	OpNext
)

// RangeError describes an out of range access, it unwraps to ErrOutOfRange.
type RangeError struct {
	Op    Op
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	switch e.Op {
	case OpNext:
		return fmt.Sprintf("iterator: no more elements, position(%d) size(%d)", e.Index, e.Size)
	default:
		return fmt.Sprintf("iterator: index out of range, index(%d) size(%d)", e.Index, e.Size)
	}
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
