package iterator

import "go.uber.org/zap"

var _ Iterator[int] = (*ForwardIterator[int])(nil)

// ForwardIterator walks a Collection from the first element to the last.
// It borrows the collection and never outlives it.
type ForwardIterator[T any] struct {
	collection *Collection[T]
	cursor     int
	// expected is the collection's modCount when the iterator was created.
	expected uint64
}

// NewForwardIterator returns an iterator bound to c, positioned at 0.
func NewForwardIterator[T any](c *Collection[T]) *ForwardIterator[T] {
	c.options.Logger.Debug("iterator created", zap.Int("size", c.Size()))
	return &ForwardIterator[T]{collection: c, expected: c.modCount}
}

func (it *ForwardIterator[T]) HasNext() bool {
	return it.cursor < it.collection.Size()
}

// Next fails fast with ErrConcurrentModification when the collection changed
// after the iterator was created.
func (it *ForwardIterator[T]) Next() (T, error) {
	var zero T
	if it.collection.modCount != it.expected {
		return zero, ErrConcurrentModification
	}
	if !it.HasNext() {
		return zero, &RangeError{Op: OpNext, Index: it.cursor, Size: it.collection.Size()}
	}
	item, err := it.collection.Get(it.cursor)
	if err != nil {
		return zero, err
	}
	it.cursor++
	return item, nil
}

// Position returns the index Next will read.
func (it *ForwardIterator[T]) Position() int {
	return it.cursor
}
