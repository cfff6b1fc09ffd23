package main

import (
	"fmt"
	"log"
	"slices"

	"github.com/delaneyj/sharedstate/cmd/demo/views"
	"github.com/delaneyj/sharedstate/component"
	"github.com/delaneyj/sharedstate/shared"
)

const (
	themeLight = "light"
	themeDark  = "dark"
)

type Profile struct {
	Name  string
	Count int
	Step  int
	Theme string
}

type counterView struct {
	Count, Step int
}

// app is the demo component tree. Every component reads the same state, none
// of them receives it from a parent.
type app struct {
	initial Profile
	names   []string
	state   *shared.State[Profile]
	rt      *component.Runtime
	changes int
	ticking bool
}

func newApp(cfg *config, ticking bool) (*app, error) {
	a := &app{
		initial: cfg.profile(),
		names:   cfg.Names,
		ticking: ticking,
	}
	a.state = shared.Create(a.initial)
	a.state.Observe(func(prev, next Profile) {
		a.changes++
		log.Printf("profile changed from %+v to %+v", prev, next)
	})

	a.rt = component.New(component.WithOnError(func(from *component.Instance, err error) {
		log.Printf("component %q failed: %v", from.Key(), err)
	}))

	tree := []struct {
		key    string
		render component.RenderFunc
	}{
		{"header", a.header},
		{"counter", a.counter},
		{"stats", a.stats},
		{"help", a.help},
	}
	for _, node := range tree {
		if _, err := a.rt.Mount(node.key, node.render); err != nil {
			return nil, fmt.Errorf("can't build the demo tree: %w", err)
		}
	}
	return a, nil
}

func (a *app) header(c *component.Instance) string {
	nameAndTheme := shared.UsePick(a.state.Readonly(), c, func(p Profile) [2]string {
		return [2]string{p.Name, p.Theme}
	})
	return views.Header(nameAndTheme[0], nameAndTheme[1])
}

func (a *app) counter(c *component.Instance) string {
	v := shared.UsePick(a.state, c, func(p Profile) counterView {
		return counterView{Count: p.Count, Step: p.Step}
	})
	return views.Counter(v.Count, v.Step)
}

// stats re-renders on every change, so it always shows how often the other
// components rendered.
func (a *app) stats(c *component.Instance) string {
	a.state.Use(c)

	counts := make([]views.RenderCount, 0, 4)
	for _, other := range a.rt.Instances() {
		renders := other.Renders()
		if other == c {
			renders++
		}
		counts = append(counts, views.RenderCount{Key: other.Key(), Renders: renders})
	}
	return views.Stats(a.changes, counts)
}

func (a *app) help(c *component.Instance) string {
	return views.Help(a.ticking)
}

func (a *app) increment() {
	a.state.SetFunc(func(p Profile) Profile {
		p.Count += p.Step
		return p
	})
}

func (a *app) decrement() {
	a.state.SetFunc(func(p Profile) Profile {
		p.Count -= p.Step
		return p
	})
}

func (a *app) reset() {
	a.state.SetValue(a.initial)
}

func (a *app) nextName() error {
	i := slices.Index(a.names, a.state.Get().Name)
	next := a.names[(i+1)%len(a.names)]
	return a.state.Update(Profile{Name: next})
}

func (a *app) toggleTheme() error {
	theme := themeDark
	if a.state.Get().Theme == themeDark {
		theme = themeLight
	}
	return a.state.Update(Profile{Theme: theme})
}

// dispatch runs the action bound to key. Unknown keys do nothing.
func (a *app) dispatch(key string) error {
	switch key {
	case "+", "=", "up":
		a.increment()
	case "-", "down":
		a.decrement()
	case "r":
		a.reset()
	case "n":
		return a.nextName()
	case "t":
		return a.toggleTheme()
	}
	return nil
}

// frame flushes pending renders and returns the whole tree's output.
func (a *app) frame() (string, error) {
	if err := a.rt.Flush(); err != nil {
		return "", fmt.Errorf("can't render frame: %w", err)
	}
	return a.rt.View(), nil
}

func (a *app) renderCounts() map[string]int {
	counts := map[string]int{}
	for _, c := range a.rt.Instances() {
		counts[c.Key()] = c.Renders()
	}
	return counts
}
