package scenario

import (
	"github.com/DjordjeVuckovic/heaviside/internal/plot"
	"github.com/DjordjeVuckovic/heaviside/internal/sweep"
	"github.com/DjordjeVuckovic/heaviside/internal/temperature"
)

type Scenario struct {
	Name         string       `yaml:"name" json:"name"`
	Driver       Driver       `yaml:"driver" json:"driver"`
	Sweep        sweep.Range  `yaml:"sweep" json:"sweep"`
	Plot         PlotConfig   `yaml:"plot" json:"plot"`
	Temperatures Temperatures `yaml:"temperatures" json:"temperatures"`
}

type Driver struct {
	X float64 `yaml:"x" json:"x"`
}

type PlotConfig struct {
	Title      string `yaml:"title" json:"title"`
	plot.Style `yaml:",inline"`
}

type Temperatures struct {
	From   string    `yaml:"from" json:"from"`
	To     string    `yaml:"to" json:"to"`
	Values []float64 `yaml:"values" json:"values"`
}

// Units resolves the configured unit names.
func (t Temperatures) Units() (from, to temperature.Unit, err error) {
	from, err = temperature.ParseUnit(t.From)
	if err != nil {
		return 0, 0, err
	}
	to, err = temperature.ParseUnit(t.To)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// Default reproduces the classroom inputs: Theta(3), the [-4, 4] sweep in
// steps of 0.5 drawn red with circle markers, and six Fahrenheit readings.
func Default() *Scenario {
	values := make([]float64, len(temperature.DefaultFahrenheit))
	copy(values, temperature.DefaultFahrenheit)

	return &Scenario{
		Name:   "classroom",
		Driver: Driver{X: 3},
		Sweep:  sweep.DefaultRange,
		Plot: PlotConfig{
			Title: "Heaviside step function",
			Style: plot.DefaultStyle,
		},
		Temperatures: Temperatures{
			From:   "F",
			To:     "K",
			Values: values,
		},
	}
}
