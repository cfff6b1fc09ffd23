package shared

// Observer receives the previous and the new value after every accepted
// change. Its pointer is its identity: the same Observer may be subscribed
// more than once, and Unsubscribe removes one entry per call.
type Observer[T any] struct {
	fn func(prev, next T)
}

func NewObserver[T any](fn func(prev, next T)) *Observer[T] {
	if fn == nil {
		fn = func(prev, next T) {}
	}
	return &Observer[T]{fn: fn}
}
