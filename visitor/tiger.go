package visitor

import "sync/atomic"

var _ Animal = (*Tiger)(nil)

type Tiger struct {
	name    string
	closed  atomic.Bool
	options *options
}

func NewTiger(name string, opts ...Option) *Tiger {
	t := &Tiger{name: name, options: newOptions(opts...)}
	t.options.Logger.Info("Tiger " + name + " created")
	return t
}

func (t *Tiger) Name() string {
	return t.name
}

func (*Tiger) Kind() Kind {
	return TigerKind
}

// Accept visitor.
func (t *Tiger) Accept(visitor AnimalVisitor) {
	visitor.VisitTiger(t)
}

func (t *Tiger) Close() error {
	if !t.closed.CompareAndSwap(false, true) {
		return ErrAnimalClosed
	}
	t.options.Logger.Info("Tiger " + t.name + " destroyed")
	return nil
}

func (*Tiger) animal() {}
