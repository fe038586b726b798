package ascii

import (
	"image"
	"math"
)

// CellAspect compresses the output height. Monospace cells are roughly twice
// as tall as they are wide.
const CellAspect = 0.5

// OutputHeight returns the number of rows produced for an image of size
// w×h at targetWidth columns.
func OutputHeight(w, h, targetWidth int) int {
	if w <= 0 || h <= 0 || targetWidth <= 0 {
		return 0
	}
	aspect := float64(h) / float64(w)
	return int(math.Floor(float64(targetWidth) * aspect * CellAspect))
}

// Rasterize downsamples img to targetWidth columns using nearest-neighbour
// sampling and returns the luminance of every cell.
func Rasterize(img image.Image, targetWidth int) Grid {
	return RasterizeWith(img, targetWidth, Nearest)
}

// RasterizeWith is Rasterize with an explicit resampler. A nil resampler
// falls back to Nearest. Degenerate sizes yield an empty grid.
func RasterizeWith(img image.Image, targetWidth int, rs Resampler) Grid {
	if img == nil {
		return Grid{}
	}
	if rs == nil {
		rs = Nearest
	}

	b := img.Bounds()
	height := OutputHeight(b.Dx(), b.Dy(), targetWidth)
	if height <= 0 {
		return Grid{}
	}

	buf := rs.Resample(img, targetWidth, height)
	grid := newGrid(targetWidth, height)

	for i := 0; i < height; i++ {
		row := buf.Pix[i*buf.Stride:]
		for j := 0; j < targetWidth; j++ {
			p := row[j*4 : j*4+3 : j*4+3]
			grid[i][j] = Luminance(p[0], p[1], p[2])
		}
	}
	return grid
}
