// Package step implements the Heaviside step function with the half-maximum
// convention at the origin.
package step

// Midpoint is the value taken at exactly x == 0.
const Midpoint = 0.5

// Theta returns 0 for x < 0, Midpoint for x == 0 and 1 otherwise.
// NaN compares false against everything and therefore maps to 1.
func Theta(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x == 0 {
		return Midpoint
	}
	return 1
}
