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
	Report       string
	Table        bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/temperatures/.env"); err != nil {
		return cliConfig{}, err
	}
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return cliConfig{}, err
	}

	cfg := cliConfig{}
	fs := flag.NewFlagSet("temperatures", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.ScenarioPath, "scenario", ec.ScenarioPath, "Path to scenario YAML (defaults to the built-in classroom scenario)")
	fs.StringVar(&cfg.Report, "report", "", "Write a JSON conversion report to this path")
	fs.BoolVar(&cfg.Table, "table", false, "Print a summary table after the conversion")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}
