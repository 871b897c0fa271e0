package observer

// Subject holds observable state and the observers interested in it.
type Subject interface {
	// Attach adds observer to the notification list.
	// Attaching the same observer twice makes it receive every broadcast twice.
	Attach(observer Observer) error

	// Detach removes every reference to observer, it is a no-op if observer is absent.
	Detach(observer Observer)

	// Notify calls Update on every observer attached at the time of the call.
	Notify()

	// State returns the current state.
	State() int
}

// Observer is notified by a Subject it is attached to.
type Observer interface {
	// Update pulls the new state from subject.
	Update(subject Subject)
}
