package visitor

import "fmt"

// Animal is the closed set of elements a Zoo holds: *Lion and *Tiger.
type Animal interface {
	// Name returns the name given at construction.
	Name() string

	// Kind returns the concrete variant.
	Kind() Kind

	// Accept calls the handler of visitor matching the concrete variant.
	Accept(visitor AnimalVisitor)

	// Close releases the animal.
	Close() error

	animal()
}

type Kind int

const (
	LionKind Kind = iota
	TigerKind
)

func (k Kind) String() string {
	switch k {
	case LionKind:
		return "Lion"
	case TigerKind:
		return "Tiger"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NewAnimal creates an animal of the given kind.
func NewAnimal(kind Kind, name string, opts ...Option) (Animal, error) {
	switch kind {
	case LionKind:
		return NewLion(name, opts...), nil
	case TigerKind:
		return NewTiger(name, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrKindUnsupported, kind)
	}
}
