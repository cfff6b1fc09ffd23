// Package shared provides a state container that several independent
// components can read, mutate and observe without threading the value through
// every layer in between.
//
// A State holds exactly one value. Set replaces it, skipping the replacement
// when the candidate is the same value as the current one, and then notifies
// every observer synchronously in subscription order. Use and UsePick bind a
// component's render cycle to the state through a Host.
//
// State is not safe for concurrent use. Like every other piece of UI state it
// belongs to the goroutine that renders; hosts marshal writes from other
// goroutines onto that goroutine first.
package shared

import (
	"slices"

	"github.com/delaneyj/sharedstate/equal"
)

// Source is the read side of a state container.
type Source[T any] interface {
	Get() T
	Subscribe(o *Observer[T]) (unsubscribe func())
	Unsubscribe(o *Observer[T])
}

type State[T any] struct {
	value     T
	observers []*Observer[T]
	equal     func(a, b T) bool
}

var (
	_ Source[int] = (*State[int])(nil)
	_ Source[int] = (*Readonly[int])(nil)
)

// Create returns a new container holding initial. Containers created by
// separate calls never share values or observers.
//
// The default check is equal.Same, under which a non-nil func is never the
// same as anything. A T that holds non-nil funcs, directly or in struct fields,
// therefore notifies on every Set, even Set(Literal(s.Get())). Pass WithEqual
// to compare such values by their data instead.
func Create[T any](initial T, opts ...Option[T]) *State[T] {
	s := &State[T]{
		value: initial,
		equal: sameValue[T],
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sameValue[T any](a, b T) bool {
	return equal.Same(a, b)
}

// Get returns the current value.
func (s *State[T]) Get() T {
	return s.value
}

// Set resolves next against the current value and stores the result unless it
// is the same value as the current one (see Create for values holding funcs).
// Observers subscribed at the time of the call are notified with the previous
// and the new value before Set returns.
func (s *State[T]) Set(next Next[T]) {
	s.store(next.resolve(s.value), false)
}

// SetValue is shorthand for Set(Literal(v)).
func (s *State[T]) SetValue(v T) {
	s.Set(Literal(v))
}

// SetFunc is shorthand for Set(Updater(fn)).
func (s *State[T]) SetFunc(fn func(prev T) T) {
	s.Set(Updater(fn))
}

func (s *State[T]) store(candidate T, force bool) {
	if !force && s.equal(s.value, candidate) {
		return
	}
	prev := s.value
	s.value = candidate
	s.notify(prev, candidate)
}

// notify walks a snapshot of the observer list, so observers added during the
// pass wait for the next change and observers removed during the pass are
// still called in this one.
func (s *State[T]) notify(prev, next T) {
	if len(s.observers) == 0 {
		return
	}
	observers := slices.Clone(s.observers)
	for _, o := range observers {
		o.fn(prev, next)
	}
}

// Subscribe appends o to the observer list. The returned func removes o once;
// calling it again does nothing.
func (s *State[T]) Subscribe(o *Observer[T]) (unsubscribe func()) {
	if o == nil {
		return func() {}
	}
	s.observers = append(s.observers, o)

	var done bool
	return func() {
		if done {
			return
		}
		done = true
		s.Unsubscribe(o)
	}
}

// Observe subscribes fn through a fresh Observer.
func (s *State[T]) Observe(fn func(prev, next T)) (unsubscribe func()) {
	return s.Subscribe(NewObserver(fn))
}

// Unsubscribe removes the first entry of the observer list that is o.
func (s *State[T]) Unsubscribe(o *Observer[T]) {
	if i := slices.Index(s.observers, o); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

// Len returns the number of entries in the observer list.
func (s *State[T]) Len() int {
	return len(s.observers)
}

// Readonly returns a handle that can observe s but not change it.
func (s *State[T]) Readonly() *Readonly[T] {
	return &Readonly[T]{state: s}
}
