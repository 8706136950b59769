package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/heaviside/internal/sweep"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Scenario    string          `json:"scenario"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func NewMeta(scenario string) Meta {
	return Meta{
		RunID:       uuid.New(),
		Timestamp:   time.Now().UTC(),
		Scenario:    scenario,
		Environment: NewEnvironmentInfo(),
	}
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

type SweepReport struct {
	Meta   Meta         `json:"meta"`
	Range  sweep.Range  `json:"range"`
	Points sweep.Points `json:"points"`
}

func NewSweepReport(meta Meta, r sweep.Range, pts sweep.Points) *SweepReport {
	return &SweepReport{Meta: meta, Range: r, Points: pts}
}

type ConversionReport struct {
	Meta    Meta              `json:"meta"`
	From    string            `json:"from"`
	To      string            `json:"to"`
	Entries []ConversionEntry `json:"entries"`
	Summary Summary           `json:"summary"`
}

type ConversionEntry struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

type Summary struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}

// NewConversionReport pairs inputs with outputs by index; both slices must
// have the same length.
func NewConversionReport(meta Meta, from, to string, inputs, outputs []float64) *ConversionReport {
	entries := make([]ConversionEntry, len(inputs))
	for i := range inputs {
		entries[i] = ConversionEntry{Input: inputs[i], Output: outputs[i]}
	}
	return &ConversionReport{
		Meta:    meta,
		From:    from,
		To:      to,
		Entries: entries,
		Summary: Summarize(outputs),
	}
}

func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	return Summary{
		Count: len(values),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		Mean:  stat.Mean(values, nil),
	}
}
