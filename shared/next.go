package shared

// Next is the argument of Set: either a literal value or an updater computed
// from the current value.
type Next[T any] struct {
	value   T
	updater func(prev T) T
	isFunc  bool
}

func Literal[T any](v T) Next[T] {
	return Next[T]{value: v}
}

// Updater wraps fn so Set calls it with the current value. A nil fn leaves the
// value unchanged.
func Updater[T any](fn func(prev T) T) Next[T] {
	return Next[T]{updater: fn, isFunc: true}
}

func (n Next[T]) resolve(current T) T {
	if !n.isFunc {
		return n.value
	}
	if n.updater == nil {
		return current
	}
	return n.updater(current)
}
