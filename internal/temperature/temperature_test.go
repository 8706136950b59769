package temperature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFahrenheitToKelvin(t *testing.T) {
	tests := []struct {
		f    float64
		want float64
	}{
		{f: 32, want: 273.15},
		{f: 212, want: 373.15},
		{f: -459.67, want: 0},
		{f: 98.8, want: 310.2611},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, FahrenheitToKelvin(tt.f), 1e-3, "F=%v", tt.f)
	}
}

func TestConvertAll_Defaults(t *testing.T) {
	got, err := ConvertAll(DefaultFahrenheit, Fahrenheit, Kelvin)
	require.NoError(t, err)
	require.Len(t, got, len(DefaultFahrenheit))

	want := []float64{288.7611, 298.8722, 310.2611, 309.3167, 311.6500, 316.4833}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-3, "index %d", i)
	}
	for i, f := range DefaultFahrenheit {
		assert.Equal(t, FahrenheitToKelvin(f), got[i])
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		from, to Unit
		want     float64
	}{
		{name: "C to F", v: 100, from: Celsius, to: Fahrenheit, want: 212},
		{name: "F to C", v: 212, from: Fahrenheit, to: Celsius, want: 100},
		{name: "C to K", v: 0, from: Celsius, to: Kelvin, want: 273.15},
		{name: "K to R", v: 100, from: Kelvin, to: Rankine, want: 180},
		{name: "R to K", v: 180, from: Rankine, to: Kelvin, want: 100},
		{name: "identity", v: 42, from: Rankine, to: Rankine, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.v, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	_, err := Convert(1, Unit('X'), Kelvin)
	assert.Error(t, err)

	_, err = Convert(1, Kelvin, Unit('X'))
	assert.Error(t, err)

	_, err = ConvertAll([]float64{1, 2}, Unit('X'), Unit('X'))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 0")
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"F": Fahrenheit, "fahrenheit": Fahrenheit, " k ": Kelvin,
		"Celsius": Celsius, "r": Rankine,
	} {
		got, err := ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseUnit("delisle")
	assert.Error(t, err)
}

func TestUnit_String(t *testing.T) {
	assert.Equal(t, "K", Kelvin.String())
	assert.Equal(t, "Unit(88)", Unit('X').String())
}
