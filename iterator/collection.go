package iterator

import (
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var _ Aggregate[int] = (*Collection[int])(nil)

// Collection is a growable sequence that owns its elements by value.
type Collection[T any] struct {
	items []T
	// modCount changes on every Add, iterators use it to detect modification.
	modCount uint64
	closed   atomic.Bool
	options  *options
}

func NewCollection[T any](opts ...Option) *Collection[T] {
	c := &Collection[T]{options: newOptions(opts...)}
	c.options.Logger.Info("CustomCollection created")
	return c
}

// Add appends item to the end of the collection.
func (c *Collection[T]) Add(item T) error {
	if c.closed.Load() {
		return ErrCollectionClosed
	}
	c.items = append(c.items, item)
	c.modCount++
	return nil
}

func (c *Collection[T]) Size() int {
	return len(c.items)
}

func (c *Collection[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, &RangeError{Op: OpGet, Index: index, Size: len(c.items)}
	}
	return c.items[index], nil
}

// Items returns a copy of the elements in insertion order.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

func (c *Collection[T]) CreateIterator() Iterator[T] {
	return NewForwardIterator(c)
}

// Close releases the collection. Iterators must not be used afterwards.
func (c *Collection[T]) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrCollectionClosed
	}
	c.options.Logger.Info("CustomCollection destroyed")
	c.items = nil
	c.options.Logger.Debug("collection released", zap.Uint64("modifications", c.modCount))
	return nil
}
