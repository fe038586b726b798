package analysis

import (
	"strings"

	"github.com/san-kum/asciify/internal/ascii"
)

// RampHistogram counts the characters of art per ramp index. Characters
// outside the ramp and newlines are ignored.
func RampHistogram(art ascii.Art) []int {
	counts := make([]int, len(ascii.Ramp))
	for i := 0; i < len(art); i++ {
		if idx := strings.IndexByte(ascii.Ramp, art[i]); idx >= 0 {
			counts[idx]++
		}
	}
	return counts
}

// RowProfile returns the mean luminance of every row of g.
func RowProfile(g ascii.Grid) []float64 {
	profile := make([]float64, g.Height())
	for i, row := range g {
		if len(row) == 0 {
			continue
		}
		sum := 0.0
		for _, l := range row {
			sum += l
		}
		profile[i] = sum / float64(len(row))
	}
	return profile
}

// Coverage is the share of ramp cells that carry ink, i.e. are not the
// blank last ramp character. Empty art has zero coverage.
func Coverage(art ascii.Art) float64 {
	counts := RampHistogram(art)
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(total-counts[len(counts)-1]) / float64(total)
}

// Floats converts counts for plotting.
func Floats(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, n := range counts {
		out[i] = float64(n)
	}
	return out
}
