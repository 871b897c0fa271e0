package visitor

import "errors"

var (
	// ErrAnimalNil Animal is nil
	ErrAnimalNil = errors.New("animal is nil")

	// ErrAnimalClosed animal was closed
	ErrAnimalClosed = errors.New("animal was closed")

	// ErrVisitorClosed visitor was closed
	ErrVisitorClosed = errors.New("visitor was closed")

	// ErrZooClosed zoo was closed
	ErrZooClosed = errors.New("zoo was closed")

	// ErrKindUnsupported NewAnimal does not know the kind
	ErrKindUnsupported = errors.New("animal kind not supported")
)
