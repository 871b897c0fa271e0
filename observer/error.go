package observer

import "errors"

var (
	// ErrObserverNil Observer is nil
	ErrObserverNil = errors.New("observer is nil")

	// ErrObserverIncomparable Observer can not be compared, so it could never be detached
	ErrObserverIncomparable = errors.New("observer is incomparable")

	// ErrClosed subject or observer was closed
	ErrClosed = errors.New("observer: closed")
)
