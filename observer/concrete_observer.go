package observer

import (
	"strconv"
	"sync/atomic"
)

var _ Observer = (*ConcreteObserver)(nil)

// ConcreteObserver mirrors the state of the last subject that notified it.
type ConcreteObserver struct {
	state   int
	updates int
	closed  atomic.Bool
	options *options
}

func NewConcreteObserver(opts ...Option) *ConcreteObserver {
	o := &ConcreteObserver{options: newOptions(opts...)}
	o.options.Logger.Info("ConcreteObserver created")
	return o
}

func (o *ConcreteObserver) Update(subject Subject) {
	o.state = subject.State()
	o.updates++
	o.options.Logger.Info("ConcreteObserver updated: " + strconv.Itoa(o.state))
}

// State returns the state received by the last Update.
func (o *ConcreteObserver) State() int {
	return o.state
}

// Updates returns how many times Update was called.
func (o *ConcreteObserver) Updates() int {
	return o.updates
}

func (o *ConcreteObserver) Close() error {
	if !o.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	o.options.Logger.Info("ConcreteObserver destroyed")
	return nil
}
