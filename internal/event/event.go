// Package event implements synchronous, typed change notification.
package event

import "golang.org/x/exp/slices"

type subscriptionID int

type listener[T any] struct {
	id subscriptionID
	fn func(T)
}

// Event fans a value out to its listeners in subscription order.
// The zero value is ready to use. Event is not safe for concurrent use.
type Event[T any] struct {
	nextID    subscriptionID
	listeners []listener[T]
}

// Subscribe adds a listener and returns a function removing it.
// Calling the returned function more than once is a no-op.
func (e *Event[T]) Subscribe(fn func(T)) func() {
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id, fn})
	return func() {
		e.listeners = slices.DeleteFunc(e.listeners, func(l listener[T]) bool {
			return l.id == id
		})
	}
}

// Fire calls every listener registered when Fire starts. Listeners may
// subscribe or unsubscribe while being called; the changes take effect on
// the next Fire.
func (e *Event[T]) Fire(v T) {
	if len(e.listeners) == 0 {
		return
	}
	for _, l := range slices.Clone(e.listeners) {
		l.fn(v)
	}
}

// Len returns the number of listeners.
func (e *Event[T]) Len() int {
	return len(e.listeners)
}
