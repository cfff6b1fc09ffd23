package shared

import "github.com/delaneyj/sharedstate/equal"

// Host is what a UI runtime provides to bind a State to one mounted component
// instance. Hook calls must happen during the instance's render, in the same
// order on every render.
type Host interface {
	// Slot returns the persistent cell for the next hook call site of the
	// current render. The cell is nil on the first render.
	Slot() *any
	// Effect schedules fn to run after the render commits when deps changed
	// since the last commit. Nil deps run on every commit, empty deps only on
	// mount. The returned cleanup runs before the next run and once on unmount.
	Effect(fn func() (cleanup func()), deps []any)
	// Rerender asks for another render of the instance. It does nothing once
	// the instance is unmounted.
	Rerender()
}

// Use binds the calling component to every change of s and returns the
// current value. After mount it re-renders once to pick up changes made
// between render and commit.
func (s *State[T]) Use(h Host) T {
	return use[T](s, h)
}

func use[T any](s Source[T], h Host) T {
	if h == nil {
		panic("shared: Use called outside of a component render")
	}
	h.Effect(func() func() {
		h.Rerender()
		return s.Subscribe(NewObserver(func(prev, next T) {
			h.Rerender()
		}))
	}, []any{})
	return s.Get()
}

type pickSlot[T, R any] struct {
	picker    func(T) R
	projected R
}

// UsePick binds the calling component to a projection of s and returns it.
// The component re-renders only when the projection is no longer shallow
// equal to the one it last rendered. The latest picker is always the one used,
// and a change in deps recomputes the projection even if s did not change.
func UsePick[T, R any](s Source[T], h Host, picker func(T) R, deps ...any) R {
	if h == nil {
		panic("shared: UsePick called outside of a component render")
	}

	cell := h.Slot()
	var slot *pickSlot[T, R]
	if *cell == nil {
		slot = &pickSlot[T, R]{projected: picker(s.Get())}
		*cell = slot
	} else {
		existing, ok := (*cell).(*pickSlot[T, R])
		if !ok {
			panic("shared: hook slot type mismatch for UsePick")
		}
		slot = existing
	}
	slot.picker = picker

	refresh := func() {
		next := slot.picker(s.Get())
		if equal.Shallow(slot.projected, next) {
			return
		}
		slot.projected = next
		h.Rerender()
	}

	h.Effect(func() func() {
		return s.Subscribe(NewObserver(func(_, _ T) {
			refresh()
		}))
	}, []any{})

	if deps == nil {
		deps = []any{}
	}
	h.Effect(func() func() {
		refresh()
		return nil
	}, deps)

	return slot.projected
}
