package step

import (
	"math"
	"strconv"
)

type Evaluation struct {
	X     float64 `json:"x"`
	Theta float64 `json:"theta"`
}

func Evaluate(x float64) Evaluation {
	return Evaluation{X: x, Theta: Theta(x)}
}

func (e Evaluation) String() string {
	return Format(e.X, e.Theta)
}

// Format renders an evaluation as "Theta(<x>) = <theta>", e.g. "Theta(3) = 1".
func Format(x, theta float64) string {
	return "Theta(" + FormatFloat(x) + ") = " + FormatFloat(theta)
}

// FormatFloat uses the shortest representation that round-trips, positional
// for magnitudes in [1e-4, 1e16) and exponent form outside it.
func FormatFloat(v float64) string {
	if abs := math.Abs(v); v == 0 || (abs >= 1e-4 && abs < 1e16) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
