package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/heaviside/internal/plot"
	"github.com/DjordjeVuckovic/heaviside/internal/plot/window"
	"github.com/DjordjeVuckovic/heaviside/internal/report"
	"github.com/DjordjeVuckovic/heaviside/internal/scenario"
	"github.com/DjordjeVuckovic/heaviside/internal/step"
	"github.com/DjordjeVuckovic/heaviside/internal/sweep"
	"github.com/DjordjeVuckovic/heaviside/pkg/logging"
)

func main() {
	logging.Init("step_plot")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout, window.Show); err != nil {
		slog.Error("Step plot failed", "error", err)
		os.Exit(1)
	}
}

type showFunc func(img image.Image, title string) error

func run(cfg cliConfig, stdout io.Writer, show showFunc) error {
	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		return err
	}

	pts, err := sweep.Sample(sc.Sweep, step.Theta)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, report.FormatList(pts.XS()), report.FormatList(pts.YS())); err != nil {
		return err
	}

	if cfg.Table || cfg.Report != "" {
		rpt := report.NewSweepReport(report.NewMeta(sc.Name), sc.Sweep, pts)
		if cfg.Table {
			report.WriteSweepTable(rpt, stdout)
		}
		if cfg.Report != "" {
			if err := report.WriteJSON(rpt, cfg.Report); err != nil {
				return err
			}
			slog.Info("Report written", "path", cfg.Report, "run_id", rpt.Meta.RunID)
		}
	}

	pl, err := plot.New(pts, sc.Plot.Style, sc.Plot.Title)
	if err != nil {
		return err
	}
	width, height := cfg.size()

	if cfg.Out != "" {
		if err := pl.Save(cfg.Out, width, height); err != nil {
			return err
		}
		slog.Info("Plot written", "path", cfg.Out)
	}

	if !cfg.Show {
		return nil
	}
	err = show(pl.Image(width, height), sc.Plot.Title)
	if errors.Is(err, window.ErrHeadless) {
		slog.Warn("Window support not compiled in, use -out to save the plot", "error", err)
		return nil
	}
	return err
}
