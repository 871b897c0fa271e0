package observer

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

type sliceObserver struct {
	states []int
}

func (o sliceObserver) Update(Subject) {}

// boxObserver is comparable by type, but not when tag holds a slice.
type boxObserver struct {
	tag any
}

func (o boxObserver) Update(Subject) {}

// detachingObserver detaches target from the subject while being notified.
type detachingObserver struct {
	target  Observer
	updates int
}

func (o *detachingObserver) Update(subject Subject) {
	o.updates++
	subject.Detach(o.target)
}

func TestConcreteSubject(t *testing.T) {
	Convey("Given a subject and an attached observer", t, func() {
		subject := NewConcreteSubject()
		a := NewConcreteObserver()
		So(subject.Attach(a), ShouldBeNil)

		Convey("Notify pushes the current state", func() {
			subject.SetState(1)
			subject.Notify()
			So(a.State(), ShouldEqual, 1)
			So(a.Updates(), ShouldEqual, 1)

			Convey("A detached observer keeps its last state", func() {
				subject.Detach(a)
				subject.SetState(2)
				subject.Notify()
				So(a.State(), ShouldEqual, 1)
				So(a.Updates(), ShouldEqual, 1)
			})
		})

		Convey("SetState alone does not notify", func() {
			subject.SetState(7)
			So(a.State(), ShouldEqual, 0)
			So(a.Updates(), ShouldEqual, 0)
			So(subject.State(), ShouldEqual, 7)
		})

		Convey("Attaching twice delivers every broadcast twice", func() {
			So(subject.Attach(a), ShouldBeNil)
			subject.SetState(3)
			subject.Notify()
			So(a.Updates(), ShouldEqual, 2)
			So(a.State(), ShouldEqual, 3)

			Convey("Detach removes every reference", func() {
				subject.Detach(a)
				So(subject.Observers(), ShouldBeEmpty)
				subject.Notify()
				So(a.Updates(), ShouldEqual, 2)
			})
		})

		Convey("Detaching an observer that was never attached is a no-op", func() {
			b := NewConcreteObserver()
			subject.Detach(b)
			So(subject.Observers(), ShouldHaveLength, 1)
		})

		Convey("Detach after Notify has no retroactive effect", func() {
			subject.SetState(5)
			subject.Notify()
			subject.Detach(a)
			So(a.State(), ShouldEqual, 5)
		})

		Convey("Detach during Notify only affects the next broadcast", func() {
			b := NewConcreteObserver()
			detacher := &detachingObserver{target: b}
			So(subject.Attach(detacher), ShouldBeNil)
			So(subject.Attach(b), ShouldBeNil)

			subject.SetState(9)
			subject.Notify()
			So(detacher.updates, ShouldEqual, 1)
			So(b.State(), ShouldEqual, 9)
			So(subject.Observers(), ShouldHaveLength, 2)

			subject.SetState(10)
			subject.Notify()
			So(b.Updates(), ShouldEqual, 1)
			So(a.State(), ShouldEqual, 10)
		})
	})

	Convey("Given invalid observers", t, func() {
		subject := NewConcreteSubject()

		Convey("nil is rejected", func() {
			So(subject.Attach(nil), ShouldEqual, ErrObserverNil)
		})

		Convey("typed nil is rejected", func() {
			var o *ConcreteObserver
			So(subject.Attach(o), ShouldEqual, ErrObserverNil)
			So(subject.Observers(), ShouldBeEmpty)
			So(subject.Notify, ShouldNotPanic)
		})

		Convey("incomparable values are rejected", func() {
			So(subject.Attach(sliceObserver{}), ShouldEqual, ErrObserverIncomparable)
			So(subject.Observers(), ShouldBeEmpty)
		})

		Convey("values holding a slice behind an interface are rejected", func() {
			So(subject.Attach(boxObserver{tag: []int{1}}), ShouldEqual, ErrObserverIncomparable)
			So(subject.Observers(), ShouldBeEmpty)
		})

		Convey("comparable values are attached and detached by value", func() {
			So(subject.Attach(boxObserver{tag: "a"}), ShouldBeNil)
			So(subject.Attach(boxObserver{tag: "b"}), ShouldBeNil)
			subject.Detach(boxObserver{tag: "a"})
			So(subject.Observers(), ShouldResemble, []Observer{boxObserver{tag: "b"}})
		})

		Convey("detaching an incomparable value is a no-op", func() {
			a := NewConcreteObserver()
			So(subject.Attach(a), ShouldBeNil)
			So(func() { subject.Detach(boxObserver{tag: []int{1}}) }, ShouldNotPanic)
			So(func() { subject.Detach(sliceObserver{}) }, ShouldNotPanic)
			So(subject.Observers(), ShouldHaveLength, 1)
		})
	})
}

func TestConcreteSubject_Trace(t *testing.T) {
	Convey("Given a traced subject and observer", t, func() {
		core, logs := zapobserver.New(zapcore.InfoLevel)
		logger := zap.New(core)

		subject := NewConcreteSubject(Logger(logger))
		o := NewConcreteObserver(Logger(logger))
		So(subject.Attach(o), ShouldBeNil)
		subject.SetState(1)
		subject.Notify()
		subject.SetState(2)
		subject.Notify()
		subject.Detach(o)
		So(o.Close(), ShouldBeNil)
		So(subject.Close(), ShouldBeNil)

		Convey("The trace follows construction and teardown order", func() {
			var messages []string
			for _, entry := range logs.All() {
				messages = append(messages, entry.Message)
			}
			So(messages, ShouldResemble, []string{
				"ConcreteSubject created",
				"ConcreteObserver created",
				"ConcreteObserver updated: 1",
				"ConcreteObserver updated: 2",
				"ConcreteObserver destroyed",
				"ConcreteSubject destroyed",
			})
		})

		Convey("Closing twice fails without tracing", func() {
			So(o.Close(), ShouldEqual, ErrClosed)
			So(subject.Close(), ShouldEqual, ErrClosed)
			So(logs.Len(), ShouldEqual, 6)
		})
	})
}
