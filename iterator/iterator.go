package iterator

// Iterator gives sequential, forward-only read access to an Aggregate
// without exposing how the aggregate stores its elements.
type Iterator[T any] interface {
	// HasNext reports whether Next has an element to return.
	HasNext() bool

	// Next returns the element at the current position and moves forward by one.
	Next() (T, error)
}

// Aggregate is a container that can hand out iterators over itself.
type Aggregate[T any] interface {
	// CreateIterator returns a new iterator positioned at the first element.
	CreateIterator() Iterator[T]

	// Size returns the number of elements.
	Size() int

	// Get returns the element at index.
	Get(index int) (T, error)
}

// Drain reads it until HasNext reports false.
func Drain[T any](it Iterator[T]) ([]T, error) {
	var items []T
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
