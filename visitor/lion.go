package visitor

import "sync/atomic"

var _ Animal = (*Lion)(nil)

type Lion struct {
	name    string
	closed  atomic.Bool
	options *options
}

func NewLion(name string, opts ...Option) *Lion {
	l := &Lion{name: name, options: newOptions(opts...)}
	l.options.Logger.Info("Lion " + name + " created")
	return l
}

func (l *Lion) Name() string {
	return l.name
}

func (*Lion) Kind() Kind {
	return LionKind
}

// Accept visitor.
func (l *Lion) Accept(visitor AnimalVisitor) {
	visitor.VisitLion(l)
}

func (l *Lion) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return ErrAnimalClosed
	}
	l.options.Logger.Info("Lion " + l.name + " destroyed")
	return nil
}

func (*Lion) animal() {}
