package shared_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/sharedstate/component"
	"github.com/delaneyj/sharedstate/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuntime(t *testing.T) *component.Runtime {
	return component.New(component.WithOnError(func(from *component.Instance, err error) {
		assert.FailNow(t, err.Error())
	}))
}

func TestUse(t *testing.T) {
	rt := newRuntime(t)
	s := shared.Create(0)

	c, err := rt.Mount("counter", func(c *component.Instance) string {
		return fmt.Sprintf("count %d", s.Use(c))
	})
	require.NoError(t, err)
	assert.Equal(t, "count 0", c.Output())
	assert.Equal(t, 1, s.Len(), "subscribed after mount")
	assert.Equal(t, 1, rt.Dirty(), "mount forces one more render")

	require.NoError(t, rt.Flush())
	assert.Equal(t, 2, c.Renders())

	s.SetValue(5)
	assert.Equal(t, 1, rt.Dirty())
	require.NoError(t, rt.Flush())
	assert.Equal(t, "count 5", c.Output())
	assert.Equal(t, 3, c.Renders())

	s.SetValue(5)
	assert.Equal(t, 0, rt.Dirty())

	assert.Equal(t, 1, s.Len(), "re-renders do not subscribe again")
	c.Unmount()
	assert.Equal(t, 0, s.Len())

	s.SetValue(6)
	assert.Equal(t, 0, rt.Dirty())
}

func TestUseSeesChangesBeforeCommit(t *testing.T) {
	rt := newRuntime(t)
	s := shared.Create("before")

	c, err := rt.Mount("late", func(c *component.Instance) string {
		v := s.Use(c)
		if c.Renders() == 0 {
			// A change made after the value was read but before the
			// subscription exists must still reach the component.
			s.SetValue("after")
		}
		return v
	})
	require.NoError(t, err)
	assert.Equal(t, "before", c.Output())

	require.NoError(t, rt.Flush())
	assert.Equal(t, "after", c.Output())
}

func TestUseReadonly(t *testing.T) {
	rt := newRuntime(t)
	s := shared.Create("a")
	ro := s.Readonly()

	c, err := rt.Mount("reader", func(c *component.Instance) string {
		return ro.Use(c)
	})
	require.NoError(t, err)
	require.NoError(t, rt.Flush())

	s.SetValue("b")
	require.NoError(t, rt.Flush())
	assert.Equal(t, "b", c.Output())
}

func TestUsePick(t *testing.T) {
	/*
	   {A: 1, B: 2}
	        |
	     s => s.A
	*/
	rt := newRuntime(t)
	s := shared.Create(&settings{A: 1, B: 2})

	c, err := rt.Mount("pick", func(c *component.Instance) string {
		a := shared.UsePick(s, c, func(v *settings) int { return v.A })
		return fmt.Sprintf("a %d", a)
	})
	require.NoError(t, err)
	assert.Equal(t, "a 1", c.Output())
	assert.Equal(t, 0, rt.Dirty())
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Update(&settings{B: 99}))
	assert.Equal(t, 0, rt.Dirty(), "projection unchanged")

	require.NoError(t, s.Update(&settings{A: 2}))
	assert.Equal(t, 1, rt.Dirty(), "projection changed")
	require.NoError(t, rt.Flush())
	assert.Equal(t, "a 2", c.Output())
	assert.Equal(t, 2, c.Renders())

	c.Unmount()
	assert.Equal(t, 0, s.Len())
}

func TestUsePickShallow(t *testing.T) {
	rt := newRuntime(t)
	s := shared.Create(settings{A: 1, B: 2, Label: "x"})

	c, err := rt.Mount("shallow", func(c *component.Instance) string {
		view := shared.UsePick(s, c, func(v settings) map[string]any {
			return map[string]any{"a": v.A, "label": v.Label}
		})
		return fmt.Sprintf("%v %v", view["a"], view["label"])
	})
	require.NoError(t, err)

	s.SetFunc(func(prev settings) settings {
		prev.B++
		return prev
	})
	assert.Equal(t, 0, rt.Dirty(), "fresh map with the same entries is not a change")

	require.NoError(t, s.Update(settings{Label: "y"}))
	assert.Equal(t, 1, rt.Dirty())
	require.NoError(t, rt.Flush())
	assert.Equal(t, "1 y", c.Output())
}

func TestUsePickLatestPickerAndDeps(t *testing.T) {
	rt := newRuntime(t)
	s := shared.Create(map[string]int{"a": 1, "b": 2})

	key := "a"
	c, err := rt.Mount("keyed", func(c *component.Instance) string {
		k := key
		v := shared.UsePick(s, c, func(m map[string]int) int { return m[k] }, k)
		return fmt.Sprintf("%s=%d", k, v)
	})
	require.NoError(t, err)
	assert.Equal(t, "a=1", c.Output())

	key = "b"
	c.Rerender()
	require.NoError(t, rt.Flush())
	assert.Equal(t, "b=2", c.Output(), "deps change recomputes the projection")

	require.NoError(t, s.Update(map[string]int{"a": 10}))
	assert.Equal(t, 0, rt.Dirty(), "the subscription uses the latest picker")

	require.NoError(t, s.Update(map[string]int{"b": 20}))
	require.NoError(t, rt.Flush())
	assert.Equal(t, "b=20", c.Output())
}

func TestUsePickReadonly(t *testing.T) {
	rt := newRuntime(t)
	s := shared.Create([2]int{1, 2})

	c, err := rt.Mount("ro", func(c *component.Instance) string {
		first := shared.UsePick[[2]int](s.Readonly(), c, func(v [2]int) int { return v[0] })
		return fmt.Sprint(first)
	})
	require.NoError(t, err)

	s.SetValue([2]int{1, 3})
	assert.Equal(t, 0, rt.Dirty())
	s.SetValue([2]int{4, 3})
	require.NoError(t, rt.Flush())
	assert.Equal(t, "4", c.Output())
}

func TestManyComponents(t *testing.T) {
	/*
	        state
	      /   |   \
	    use  a    b
	*/
	rt := newRuntime(t)
	s := shared.Create(settings{A: 1, B: 1})

	whole, err := rt.Mount("whole", func(c *component.Instance) string {
		v := s.Use(c)
		return fmt.Sprintf("%d/%d", v.A, v.B)
	})
	require.NoError(t, err)
	onlyA, err := rt.Mount("a", func(c *component.Instance) string {
		return fmt.Sprint(shared.UsePick(s, c, func(v settings) int { return v.A }))
	})
	require.NoError(t, err)
	onlyB, err := rt.Mount("b", func(c *component.Instance) string {
		return fmt.Sprint(shared.UsePick(s, c, func(v settings) int { return v.B }))
	})
	require.NoError(t, err)
	require.NoError(t, rt.Flush())
	assert.Equal(t, 3, s.Len())

	before := [3]int{whole.Renders(), onlyA.Renders(), onlyB.Renders()}
	require.NoError(t, s.Update(settings{B: 2}))
	require.NoError(t, rt.Flush())

	assert.Equal(t, before[0]+1, whole.Renders())
	assert.Equal(t, before[1], onlyA.Renders())
	assert.Equal(t, before[2]+1, onlyB.Renders())
	assert.Equal(t, "1/2\n1\n2", rt.View())
}

type fakeHost struct {
	cell any
}

func (h *fakeHost) Slot() *any { return &h.cell }
func (h *fakeHost) Effect(fn func() (cleanup func()), deps []any) {}
func (h *fakeHost) Rerender() {}

func TestHookMisuse(t *testing.T) {
	s := shared.Create(1)

	assert.Panics(t, func() { s.Use(nil) })
	assert.Panics(t, func() {
		shared.UsePick(s, nil, func(v int) int { return v })
	})

	h := &fakeHost{cell: "not a pick slot"}
	assert.Panics(t, func() {
		shared.UsePick(s, h, func(v int) int { return v })
	})
}
