package ascii

import (
	"image"
	"math"
	"strings"
)

// Ramp is ordered darkest first.
const Ramp = "@%#*+=-:. "

// Luminance weights (ITU-R BT.601).
const (
	weightR = 0.299
	weightG = 0.587
	weightB = 0.114
)

// Luminance returns the perceptual brightness of an RGB triple in [0, 255].
func Luminance(r, g, b uint8) float64 {
	return weightR*float64(r) + weightG*float64(g) + weightB*float64(b)
}

// RampIndex maps a luminance value onto an index into Ramp.
func RampIndex(l float64) int {
	i := int(math.Floor(l / 255 * float64(len(Ramp)-1)))
	if i < 0 {
		return 0
	}
	if i > len(Ramp)-1 {
		return len(Ramp) - 1
	}
	return i
}

// CharFor returns the ramp character for a luminance value.
func CharFor(l float64) byte {
	return Ramp[RampIndex(l)]
}

// Quantize turns a luminance grid into ASCII art. Rows are separated by a
// single newline with none after the last row.
func Quantize(g Grid) Art {
	if g.Empty() {
		return ""
	}

	var b strings.Builder
	b.Grow(g.Height() * (g.Width() + 1))
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, l := range row {
			b.WriteByte(CharFor(l))
		}
	}
	return Art(b.String())
}

// Convert rasterizes img at targetWidth with the default resampler and
// quantizes the result.
func Convert(img image.Image, targetWidth int) Art {
	return Quantize(Rasterize(img, targetWidth))
}

// ConvertWith is Convert using an explicit resampler.
func ConvertWith(img image.Image, targetWidth int, rs Resampler) Art {
	return Quantize(RasterizeWith(img, targetWidth, rs))
}
