package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteSweepTable(r *SweepReport, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Step Function Sweep (%s) ===\n\n", r.Meta.Scenario)
	fmt.Fprintf(tw, "Range [%g, %g] step %g, %d samples\n\n", r.Range.Start, r.Range.Stop, r.Range.Step, len(r.Points))

	writeHeader(tw, "x", "theta")
	for _, p := range r.Points {
		fmt.Fprintf(tw, "%g\t%g\n", p.X, p.Y)
	}

	fmt.Fprintln(tw)
	tw.Flush()
}

func WriteConversionTable(r *ConversionReport, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Temperature Conversion %s -> %s (%s) ===\n\n", r.From, r.To, r.Meta.Scenario)

	writeHeader(tw, r.From, r.To)
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%.2f\t%.4f\n", e.Input, e.Output)
	}
	fmt.Fprintln(tw)

	s := r.Summary
	writeHeader(tw, "Count", "Min", "Max", "Mean")
	fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\n", s.Count, s.Min, s.Max, s.Mean)

	fmt.Fprintln(tw)
	tw.Flush()
}

func writeHeader(tw io.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}
