package main

import (
	"flag"
	"io"
	"os"

	"github.com/DjordjeVuckovic/heaviside/pkg/config/env"
)

type envConfig struct {
	ScenarioPath string `env:"SCENARIO_PATH"`
}

type cliConfig struct {
	ScenarioPath string
	X            float64
	// XSet is false when -x was omitted and the scenario value applies.
	XSet bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/heaviside/.env"); err != nil {
		return cliConfig{}, err
	}
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return cliConfig{}, err
	}

	cfg := cliConfig{}
	fs := flag.NewFlagSet("heaviside", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.ScenarioPath, "scenario", ec.ScenarioPath, "Path to scenario YAML (defaults to the built-in classroom scenario)")
	fs.Float64Var(&cfg.X, "x", 0, "Input value (defaults to the scenario driver input)")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "x" {
			cfg.XSet = true
		}
	})
	return cfg, nil
}
