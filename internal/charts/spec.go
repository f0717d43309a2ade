// Package charts derives chart data from a score ledger and renders it.
//
// The derivations in Build are pure; drawing is left to a Renderer so the
// presentation layer can be swapped without touching the arithmetic.
package charts

import "io"

type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

// Spec is the abstract description handed to a Renderer.
// X and Y are parallel; an empty Y means there is nothing to plot.
type Spec struct {
	Kind   Kind
	Title  string
	Series string
	XLabel string
	YLabel string
	X      []string
	Y      []float64
}

// Empty reports whether the spec carries no data points.
func (s Spec) Empty() bool {
	return len(s.Y) == 0
}

// Renderer draws a Spec onto w.
type Renderer interface {
	Render(w io.Writer, spec Spec) error
}
