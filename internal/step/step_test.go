package step

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheta(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "large negative", x: -1e9, want: 0},
		{name: "negative", x: -4, want: 0},
		{name: "smallest negative", x: -math.SmallestNonzeroFloat64, want: 0},
		{name: "negative zero", x: math.Copysign(0, -1), want: 0.5},
		{name: "zero", x: 0, want: 0.5},
		{name: "smallest positive", x: math.SmallestNonzeroFloat64, want: 1},
		{name: "positive", x: 3, want: 1},
		{name: "negative infinity", x: math.Inf(-1), want: 0},
		{name: "positive infinity", x: math.Inf(1), want: 1},
		{name: "NaN falls through", x: math.NaN(), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Theta(tt.x))
		})
	}
}

func TestTheta_Repeatable(t *testing.T) {
	for _, x := range []float64{-2.5, 0, 0.25, 7} {
		first := Theta(x)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Theta(x))
		}
	}
}

func TestTheta_OutputSet(t *testing.T) {
	allowed := map[float64]bool{0: true, 0.5: true, 1: true}
	for x := -10.0; x <= 10; x += 0.125 {
		assert.True(t, allowed[Theta(x)], "unexpected theta for x=%v", x)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{x: 3, want: "Theta(3) = 1"},
		{x: 0, want: "Theta(0) = 0.5"},
		{x: -1.5, want: "Theta(-1.5) = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.x, Theta(tt.x)))
			assert.Equal(t, tt.want, Evaluate(tt.x).String())
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 0, want: "0"},
		{v: 0.5, want: "0.5"},
		{v: 1000000, want: "1000000"},
		{v: -2.5e6, want: "-2500000"},
		{v: 1234567890123456, want: "1234567890123456"},
		{v: 1e16, want: "1e+16"},
		{v: 0.0001, want: "0.0001"},
		{v: 0.00001, want: "1e-05"},
		{v: 288.76111111111106, want: "288.76111111111106"},
		{v: math.Inf(1), want: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.v))
		})
	}
}

func TestFormat_LargeInputStaysPositional(t *testing.T) {
	assert.Equal(t, "Theta(1000000) = 1", Evaluate(1e6).String())
}
