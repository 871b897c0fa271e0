package visitor

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Zoo owns its animals, closing the zoo closes every animal.
type Zoo struct {
	animals []Animal
	closed  atomic.Bool
	options *options
}

func NewZoo(opts ...Option) *Zoo {
	z := &Zoo{options: newOptions(opts...)}
	z.options.Logger.Info("Zoo created")
	return z
}

// AddAnimal transfers the ownership of animal to the zoo.
func (z *Zoo) AddAnimal(animal Animal) error {
	if isNil(animal) {
		return ErrAnimalNil
	}
	if z.closed.Load() {
		return ErrZooClosed
	}
	z.animals = append(z.animals, animal)
	z.options.Logger.Debug("animal added",
		zap.Stringer("kind", animal.Kind()),
		zap.String("name", animal.Name()),
		zap.Int("animals", len(z.animals)))
	return nil
}

// Accept applies visitor to every animal in insertion order.
func (z *Zoo) Accept(visitor AnimalVisitor) {
	z.options.Logger.Info("---START---")
	for _, animal := range z.animals {
		animal.Accept(visitor)
	}
	z.options.Logger.Info("----END----")
}

func (z *Zoo) Len() int {
	return len(z.animals)
}

// Animals returns a copy of the animals, they remain owned by the zoo.
func (z *Zoo) Animals() []Animal {
	return slices.Clone(z.animals)
}

// Close releases the zoo and then each animal once, in insertion order.
func (z *Zoo) Close() error {
	if !z.closed.CompareAndSwap(false, true) {
		return ErrZooClosed
	}
	z.options.Logger.Info("Zoo destroyed")
	var errs []error
	for _, animal := range z.animals {
		if err := animal.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	z.animals = nil
	return errors.Join(errs...)
}

func isNil(animal Animal) bool {
	switch animal := animal.(type) {
	case *Lion:
		return animal == nil
	case *Tiger:
		return animal == nil
	default:
		return animal == nil
	}
}
