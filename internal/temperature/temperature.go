// Package temperature converts between Celsius, Fahrenheit, Kelvin and Rankine.
package temperature

import (
	"fmt"
	"strings"
)

type Unit byte

const (
	Celsius    Unit = 'C'
	Fahrenheit Unit = 'F'
	Kelvin     Unit = 'K'
	Rankine    Unit = 'R'
)

// AbsoluteZeroCelsius is 0 K expressed in degrees Celsius.
const AbsoluteZeroCelsius = 273.15

// DefaultFahrenheit is the reference list of readings the converter ships with.
var DefaultFahrenheit = []float64{60.1, 78.3, 98.8, 97.1, 101.3, 110.0}

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	case "r", "rankine":
		return Rankine, nil
	}
	return 0, fmt.Errorf("unknown temperature unit %q", s)
}

func (u Unit) String() string {
	switch u {
	case Celsius, Fahrenheit, Kelvin, Rankine:
		return string(rune(u))
	}
	return fmt.Sprintf("Unit(%d)", byte(u))
}

func (u Unit) Valid() bool {
	switch u {
	case Celsius, Fahrenheit, Kelvin, Rankine:
		return true
	}
	return false
}

// FahrenheitToKelvin computes K = (F - 32) * 5/9 + 273.15.
func FahrenheitToKelvin(f float64) float64 {
	return (f-32)*(5.0/9.0) + AbsoluteZeroCelsius
}

func ToKelvin(v float64, from Unit) (float64, error) {
	switch from {
	case Kelvin:
		return v, nil
	case Celsius:
		return v + AbsoluteZeroCelsius, nil
	case Fahrenheit:
		return FahrenheitToKelvin(v), nil
	case Rankine:
		return v * (5.0 / 9.0), nil
	}
	return 0, fmt.Errorf("unknown temperature unit %v", from)
}

func FromKelvin(k float64, to Unit) (float64, error) {
	switch to {
	case Kelvin:
		return k, nil
	case Celsius:
		return k - AbsoluteZeroCelsius, nil
	case Fahrenheit:
		return (k-AbsoluteZeroCelsius)*1.8 + 32, nil
	case Rankine:
		return k * 1.8, nil
	}
	return 0, fmt.Errorf("unknown temperature unit %v", to)
}

// Convert goes through Kelvin, so a conversion into Kelvin uses exactly the
// source unit's formula.
func Convert(v float64, from, to Unit) (float64, error) {
	if from == to && from.Valid() {
		return v, nil
	}
	k, err := ToKelvin(v, from)
	if err != nil {
		return 0, err
	}
	return FromKelvin(k, to)
}

// ConvertAll converts values elementwise, preserving order.
func ConvertAll(values []float64, from, to Unit) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for i, v := range values {
		c, err := Convert(v, from, to)
		if err != nil {
			return nil, fmt.Errorf("convert value at index %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
