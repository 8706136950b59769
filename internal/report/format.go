package report

import (
	"strings"

	"github.com/DjordjeVuckovic/heaviside/internal/step"
)

// FormatFloat matches the notation of the Theta(...) line.
func FormatFloat(v float64) string {
	return step.FormatFloat(v)
}

// FormatList renders values as "[a, b, c]".
func FormatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
