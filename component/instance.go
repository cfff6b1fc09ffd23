package component

import (
	"fmt"
	"slices"

	"github.com/delaneyj/sharedstate/equal"
	"github.com/delaneyj/sharedstate/shared"
)

var _ shared.Host = (*Instance)(nil)

// Instance is one mounted component.
type Instance struct {
	rt     *Runtime
	id     uint64
	key    string
	render RenderFunc

	slots   []*any
	slotIdx int

	effects   []*effect
	effectIdx int

	output    string
	renders   int
	committed bool
	mounted   bool
	rendering bool
}

type effect struct {
	fn       func() func()
	deps     []any
	nextDeps []any
	hasRun   bool
	pending  bool
	cleanup  func()
}

// ID is the xxhash of the instance key.
func (c *Instance) ID() uint64 {
	return c.id
}

func (c *Instance) Key() string {
	return c.key
}

// Output returns what the last successful render produced.
func (c *Instance) Output() string {
	return c.output
}

// Renders counts the renders of this instance, failed ones included.
func (c *Instance) Renders() int {
	return c.renders
}

func (c *Instance) Mounted() bool {
	return c.mounted
}

// Slot returns the persistent cell for the next hook call site.
func (c *Instance) Slot() *any {
	c.mustRender("Slot")
	idx := c.slotIdx
	c.slotIdx++
	if idx < len(c.slots) {
		return c.slots[idx]
	}
	cell := new(any)
	c.slots = append(c.slots, cell)
	return cell
}

// Effect registers fn for the current hook call site. It runs after the
// render commits if deps changed since it last ran.
func (c *Instance) Effect(fn func() (cleanup func()), deps []any) {
	c.mustRender("Effect")
	idx := c.effectIdx
	c.effectIdx++

	var e *effect
	if idx < len(c.effects) {
		e = c.effects[idx]
	} else {
		e = &effect{}
		c.effects = append(c.effects, e)
	}

	e.fn = fn
	e.nextDeps = slices.Clone(deps)
	e.pending = !e.hasRun || deps == nil || equal.DepsChanged(e.deps, deps)
}

func (c *Instance) Rerender() {
	if !c.mounted {
		return
	}
	c.rt.dirty.Add(c)
}

// Unmount runs every effect cleanup once, last registered first, and removes
// the instance from its runtime.
func (c *Instance) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false

	for i := len(c.effects) - 1; i >= 0; i-- {
		e := c.effects[i]
		if e.cleanup == nil {
			continue
		}
		cleanup := e.cleanup
		e.cleanup = nil
		c.safely(cleanup)
	}
	c.rt.remove(c)
}

func (c *Instance) mustRender(hook string) {
	if !c.rendering {
		panic(fmt.Sprintf("component: %s called outside of the render of %q", hook, c.key))
	}
}

func (c *Instance) renderNow() {
	c.rt.dirty.Remove(c)
	c.slotIdx, c.effectIdx = 0, 0
	slotCount, effectCount := len(c.slots), len(c.effects)

	c.rendering = true
	out, err := c.safeRender()
	c.rendering = false
	c.renders++

	if err != nil {
		// Call sites first reached by a failed render are forgotten, the
		// next render registers them again.
		c.slots = c.slots[:slotCount]
		c.effects = c.effects[:effectCount]
		c.rt.report(c, err)
		return
	}
	if c.committed && (c.slotIdx != slotCount || c.effectIdx != effectCount) {
		c.rt.report(c, fmt.Errorf(
			"%q used %d slots and %d effects, expected %d and %d: %w",
			c.key, c.slotIdx, c.effectIdx, slotCount, effectCount, ErrHookOrder,
		))
	}
	c.output = out
	c.commit()
}

func (c *Instance) safeRender() (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render of %q panicked: %v", c.key, r)
		}
	}()
	return c.render(c), nil
}

func (c *Instance) commit() {
	c.committed = true
	for _, e := range c.effects {
		if !e.pending || !c.mounted {
			continue
		}
		e.pending = false
		if e.cleanup != nil {
			cleanup := e.cleanup
			e.cleanup = nil
			c.safely(cleanup)
		}
		e.deps = e.nextDeps
		e.hasRun = true
		fn := e.fn
		c.safely(func() {
			e.cleanup = fn()
		})
	}
}

func (c *Instance) safely(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.rt.report(c, fmt.Errorf("effect of %q panicked: %v", c.key, r))
		}
	}()
	fn()
}
