package observer

import (
	"reflect"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var _ Subject = (*ConcreteSubject)(nil)

// ConcreteSubject keeps an integer state. Observers are borrowed, the subject
// never closes them.
type ConcreteSubject struct {
	state     int
	observers []Observer
	closed    atomic.Bool
	options   *options
}

func NewConcreteSubject(opts ...Option) *ConcreteSubject {
	s := &ConcreteSubject{options: newOptions(opts...)}
	s.options.Logger.Info("ConcreteSubject created")
	return s
}

func (s *ConcreteSubject) Attach(observer Observer) error {
	if isNil(observer) {
		return ErrObserverNil
	}
	if !same(observer, observer) {
		return ErrObserverIncomparable
	}
	s.observers = append(s.observers, observer)
	s.options.Logger.Debug("observer attached", zap.Int("observers", len(s.observers)))
	return nil
}

func (s *ConcreteSubject) Detach(observer Observer) {
	indexes := slicex.IndexesFunc(s.observers, func(attached Observer) bool {
		return same(attached, observer)
	})
	if len(indexes) <= 0 {
		return
	}
	s.observers = slicex.DeleteAll(s.observers, indexes...)
	s.options.Logger.Debug("observer detached",
		zap.Int("removed", len(indexes)),
		zap.Int("observers", len(s.observers)))
}

func (s *ConcreteSubject) Notify() {
	// observers attached or detached by an Update take effect on the next Notify.
	for _, observer := range slices.Clone(s.observers) {
		observer.Update(s)
	}
}

// SetState stores state without notifying.
func (s *ConcreteSubject) SetState(state int) {
	s.state = state
}

func (s *ConcreteSubject) State() int {
	return s.state
}

// Observers returns a copy of the notification list.
func (s *ConcreteSubject) Observers() []Observer {
	return slices.Clone(s.observers)
}

func (s *ConcreteSubject) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	s.options.Logger.Info("ConcreteSubject destroyed")
	s.observers = nil
	return nil
}

func isNil(observer Observer) bool {
	if observer == nil {
		return true
	}
	val := reflect.ValueOf(observer)
	switch val.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return val.IsNil()
	default:
		return false
	}
}

// same reports whether a and b are the same observer.
// Values whose comparison panics are never the same, not even to themselves.
func same(a, b Observer) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return a == b
}
