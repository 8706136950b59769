package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/heaviside/internal/step"
	"github.com/DjordjeVuckovic/heaviside/internal/sweep"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	a := NewMeta("classroom")
	b := NewMeta("classroom")

	assert.NotEqual(t, uuid.Nil, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, "classroom", a.Scenario)
	assert.NotEmpty(t, a.Environment.GoVersion)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]float64{3, 1, 2})
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
}

func TestNewConversionReport(t *testing.T) {
	r := NewConversionReport(NewMeta("t"), "F", "K", []float64{32, 212}, []float64{273.15, 373.15})

	require.Len(t, r.Entries, 2)
	assert.Equal(t, ConversionEntry{Input: 212, Output: 373.15}, r.Entries[1])
	assert.InDelta(t, 323.15, r.Summary.Mean, 1e-9)
}

func TestWriteSweepTable(t *testing.T) {
	pts, err := sweep.Sample(sweep.Range{Start: -1, Stop: 1, Step: 1}, step.Theta)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSweepTable(NewSweepReport(NewMeta("classroom"), sweep.Range{Start: -1, Stop: 1, Step: 1}, pts), &buf)

	out := buf.String()
	assert.Contains(t, out, "Step Function Sweep (classroom)")
	assert.Contains(t, out, "3 samples")
	assert.Contains(t, out, "0.5")
}

func TestWriteConversionTable(t *testing.T) {
	r := NewConversionReport(NewMeta("classroom"), "F", "K", []float64{98.8}, []float64{310.26111})

	var buf bytes.Buffer
	WriteConversionTable(r, &buf)

	out := buf.String()
	assert.Contains(t, out, "F -> K")
	assert.Contains(t, out, "98.80")
	assert.Contains(t, out, "310.2611")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	r := NewConversionReport(NewMeta("classroom"), "F", "K", []float64{32}, []float64{273.15})

	require.NoError(t, WriteJSON(r, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded ConversionReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.Meta.RunID, decoded.Meta.RunID)
	assert.Equal(t, 273.15, decoded.Entries[0].Output)
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := WriteJSON(map[string]int{}, filepath.Join(t.TempDir(), "missing", "report.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write report")
}
