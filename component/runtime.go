// Package component is a small component runtime that hosts shared.State
// bindings. Each mounted Instance renders to text, keeps positional hook slots
// between renders, runs effects after the render commits and re-renders when
// asked to.
//
// The runtime is single goroutine, like the state it hosts. Nothing renders
// until Mount or Flush is called, so the owner of the Runtime decides when a
// frame happens.
package component

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

var (
	ErrRenderLoop   = errors.New("render loop did not settle")
	ErrDuplicateKey = errors.New("component key already mounted")
	ErrHookOrder    = errors.New("hook order changed between renders")
)

// OnErrorFunc receives failures from renders and effects. A panic inside a
// render or an effect is recovered and reported as an error.
type OnErrorFunc func(from *Instance, err error)

type RenderFunc func(c *Instance) string

type Runtime struct {
	instances []*Instance
	byKey     map[string]*Instance
	// Instances waiting for a render. Repeated Rerender calls between two
	// flushes collapse into one render.
	dirty     mapset.Set[*Instance]
	onError   OnErrorFunc
	maxPasses int
}

type Option func(rt *Runtime)

// WithOnError installs the error handler. Without one, errors panic.
func WithOnError(fn OnErrorFunc) Option {
	return func(rt *Runtime) {
		rt.onError = fn
	}
}

// WithMaxPasses bounds how many render passes a single Flush may take.
func WithMaxPasses(n int) Option {
	return func(rt *Runtime) {
		if n > 0 {
			rt.maxPasses = n
		}
	}
}

func New(opts ...Option) *Runtime {
	rt := &Runtime{
		byKey:     map[string]*Instance{},
		dirty:     mapset.NewThreadUnsafeSet[*Instance](),
		maxPasses: 100,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Mount creates an instance for key, renders it once and commits its effects.
// Re-renders requested by those effects wait for the next Flush.
func (rt *Runtime) Mount(key string, render RenderFunc) (*Instance, error) {
	if _, ok := rt.byKey[key]; ok {
		return nil, fmt.Errorf("can't mount %q: %w", key, ErrDuplicateKey)
	}

	c := &Instance{
		rt:      rt,
		id:      xxhash.Sum64String(key),
		key:     key,
		render:  render,
		mounted: true,
	}
	rt.instances = append(rt.instances, c)
	rt.byKey[key] = c

	c.renderNow()
	return c, nil
}

// Flush renders every dirty instance in mount order until no instance is
// dirty anymore.
func (rt *Runtime) Flush() error {
	for pass := 0; rt.dirty.Cardinality() > 0; pass++ {
		if pass >= rt.maxPasses {
			return fmt.Errorf("%w after %d passes", ErrRenderLoop, pass)
		}
		for _, c := range slices.Clone(rt.instances) {
			if rt.dirty.Contains(c) {
				c.renderNow()
			}
		}
	}
	return nil
}

func (rt *Runtime) Lookup(key string) (*Instance, bool) {
	c, ok := rt.byKey[key]
	return c, ok
}

// Instances returns the mounted instances in mount order.
func (rt *Runtime) Instances() []*Instance {
	return slices.Clone(rt.instances)
}

// Dirty returns how many instances wait for a render.
func (rt *Runtime) Dirty() int {
	return rt.dirty.Cardinality()
}

// View joins the last output of every mounted instance in mount order.
func (rt *Runtime) View() string {
	outputs := make([]string, 0, len(rt.instances))
	for _, c := range rt.instances {
		outputs = append(outputs, c.output)
	}
	return strings.Join(outputs, "\n")
}

func (rt *Runtime) remove(c *Instance) {
	rt.dirty.Remove(c)
	delete(rt.byKey, c.key)
	if i := slices.Index(rt.instances, c); i >= 0 {
		rt.instances = slices.Delete(rt.instances, i, i+1)
	}
}

func (rt *Runtime) report(c *Instance, err error) {
	if rt.onError == nil {
		panic(err)
	}
	rt.onError(c, err)
}
