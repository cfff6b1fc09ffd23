package shared

// Readonly exposes the observing half of a State.
type Readonly[T any] struct {
	state *State[T]
}

func (r *Readonly[T]) Get() T {
	return r.state.Get()
}

func (r *Readonly[T]) Subscribe(o *Observer[T]) (unsubscribe func()) {
	return r.state.Subscribe(o)
}

func (r *Readonly[T]) Observe(fn func(prev, next T)) (unsubscribe func()) {
	return r.state.Observe(fn)
}

func (r *Readonly[T]) Unsubscribe(o *Observer[T]) {
	r.state.Unsubscribe(o)
}

func (r *Readonly[T]) Use(h Host) T {
	return use[T](r.state, h)
}

func (r *Readonly[T]) Len() int {
	return r.state.Len()
}
