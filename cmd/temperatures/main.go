package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/heaviside/internal/report"
	"github.com/DjordjeVuckovic/heaviside/internal/scenario"
	"github.com/DjordjeVuckovic/heaviside/internal/temperature"
	"github.com/DjordjeVuckovic/heaviside/pkg/logging"
)

func main() {
	logging.Init("temperatures")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("Conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig, stdout io.Writer) error {
	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		return err
	}

	from, to, err := sc.Temperatures.Units()
	if err != nil {
		return err
	}

	inputs := sc.Temperatures.Values
	converted := make([]float64, 0, len(inputs))
	for _, v := range inputs {
		c, err := temperature.Convert(v, from, to)
		if err != nil {
			return err
		}
		converted = append(converted, c)
		if _, err := fmt.Fprintln(stdout, report.FormatFloat(c)); err != nil {
			return fmt.Errorf("write converted value: %w", err)
		}
	}

	if _, err := fmt.Fprintf(stdout, "Conversion Complete\n%s\n", report.FormatList(converted)); err != nil {
		return fmt.Errorf("write conversion summary: %w", err)
	}

	if cfg.Table || cfg.Report != "" {
		rpt := report.NewConversionReport(report.NewMeta(sc.Name), from.String(), to.String(), inputs, converted)
		if cfg.Table {
			report.WriteConversionTable(rpt, stdout)
		}
		if cfg.Report != "" {
			if err := report.WriteJSON(rpt, cfg.Report); err != nil {
				return err
			}
			slog.Info("Report written", "path", cfg.Report, "run_id", rpt.Meta.RunID)
		}
	}
	return nil
}
