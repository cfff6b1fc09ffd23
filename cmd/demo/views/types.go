// Package views holds the quicktemplate views of the demo. Run
// `qtc -dir=cmd/demo/views` after editing views.qtpl.
package views

// RenderCount is how many times one component rendered.
type RenderCount struct {
	Key     string
	Renders int
}
