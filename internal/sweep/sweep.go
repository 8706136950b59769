// Package sweep samples a function over an evenly spaced, closed range.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxSamples bounds the size of a single sweep.
const MaxSamples = 100_000

// tolerance absorbs rounding when (Stop-Start)/Step is meant to be integral.
const tolerance = 1e-9

var DefaultRange = Range{Start: -4, Stop: 4, Step: 0.5}

// Range is the closed interval [Start, Stop] walked in increments of Step.
type Range struct {
	Start float64 `yaml:"start" json:"start"`
	Stop  float64 `yaml:"stop" json:"stop"`
	Step  float64 `yaml:"step" json:"step"`
}

func (r Range) Validate() error {
	bounds := []struct {
		name string
		v    float64
	}{
		{"start", r.Start},
		{"stop", r.Stop},
		{"step", r.Step},
	}
	for _, b := range bounds {
		if math.IsNaN(b.v) || math.IsInf(b.v, 0) {
			return fmt.Errorf("%s must be finite, got %v", b.name, b.v)
		}
	}
	if r.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", r.Step)
	}
	if r.Stop < r.Start {
		return fmt.Errorf("stop %v is before start %v", r.Stop, r.Start)
	}
	if r.span() > MaxSamples-1 {
		return errors.New("range produces too many samples")
	}
	return nil
}

func (r Range) span() float64 {
	return math.Floor((r.Stop-r.Start)/r.Step + tolerance)
}

// Count is the number of samples in the range, both ends included when Stop
// lies on the grid. An invalid range has no samples.
func (r Range) Count() int {
	if r.Validate() != nil {
		return 0
	}
	return int(r.span()) + 1
}

// Values returns the sample positions, or nil for an invalid range.
// Positions are computed from the grid index rather than by repeated
// addition, so no drift accumulates.
func (r Range) Values() []float64 {
	n := r.Count()
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{r.Start}
	}
	last := r.Start + float64(n-1)*r.Step
	return floats.Span(make([]float64, n), r.Start, last)
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return r.Start <= v && v <= r.Stop
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Points []Point

// Sample evaluates f at every position of r, in ascending order.
func Sample(r Range, f func(float64) float64) (Points, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid range: %w", err)
	}

	xs := r.Values()
	pts := make(Points, len(xs))
	for i, x := range xs {
		pts[i] = Point{X: x, Y: f(x)}
	}
	return pts, nil
}

func (p Points) XS() []float64 {
	xs := make([]float64, len(p))
	for i, pt := range p {
		xs[i] = pt.X
	}
	return xs
}

func (p Points) YS() []float64 {
	ys := make([]float64, len(p))
	for i, pt := range p {
		ys[i] = pt.Y
	}
	return ys
}

// Len and XY let Points be plotted directly as a gonum plotter.XYer.
func (p Points) Len() int { return len(p) }

func (p Points) XY(i int) (float64, float64) { return p[i].X, p[i].Y }
