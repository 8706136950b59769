package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/heaviside/internal/scenario"
	"github.com/DjordjeVuckovic/heaviside/internal/step"
	"github.com/DjordjeVuckovic/heaviside/pkg/logging"
)

func main() {
	logging.Init("heaviside")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig, stdout io.Writer) error {
	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		return err
	}

	x := sc.Driver.X
	if cfg.XSet {
		x = cfg.X
	}

	ev := step.Evaluate(x)
	slog.Debug("Evaluated step function", "scenario", sc.Name, "x", ev.X, "theta", ev.Theta)

	_, err = fmt.Fprintln(stdout, ev)
	return err
}
