package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/DjordjeVuckovic/heaviside/pkg/config/env"
	"gonum.org/v1/plot/vg"
)

type envConfig struct {
	ScenarioPath string `env:"SCENARIO_PATH"`
}

type cliConfig struct {
	ScenarioPath string
	Out          string
	Report       string
	Table        bool
	Show         bool
	Width        float64
	Height       float64
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/step_plot/.env"); err != nil {
		return cliConfig{}, err
	}
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return cliConfig{}, err
	}

	cfg := cliConfig{}
	fs := flag.NewFlagSet("step_plot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.ScenarioPath, "scenario", ec.ScenarioPath, "Path to scenario YAML (defaults to the built-in classroom scenario)")
	fs.StringVar(&cfg.Out, "out", "", "Write the plot to this file; format from extension (png, svg, pdf, ...)")
	fs.StringVar(&cfg.Report, "report", "", "Write a JSON sweep report to this path")
	fs.BoolVar(&cfg.Table, "table", false, "Print the samples as a table")
	fs.BoolVar(&cfg.Show, "show", true, "Open the plot in a window and wait until it is closed")
	fs.Float64Var(&cfg.Width, "width", 6.4, "Plot width in inches")
	fs.Float64Var(&cfg.Height, "height", 4.8, "Plot height in inches")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cliConfig{}, fmt.Errorf("plot size must be positive, got %vx%v", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

func (c cliConfig) size() (vg.Length, vg.Length) {
	return vg.Length(c.Width) * vg.Inch, vg.Length(c.Height) * vg.Inch
}
