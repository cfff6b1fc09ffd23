package shared

type Option[T any] func(s *State[T])

// WithEqual replaces the SameValue check Set uses to skip unchanged values.
func WithEqual[T any](fn func(a, b T) bool) Option[T] {
	return func(s *State[T]) {
		if fn != nil {
			s.equal = fn
		}
	}
}
