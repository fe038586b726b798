package ascii

// Grid holds luminance values in [0, 255], indexed [row][col].
type Grid [][]float64

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the number of columns, 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Empty reports whether the grid has no cells.
func (g Grid) Empty() bool { return g.Height() == 0 || g.Width() == 0 }

// newGrid allocates one backing slice and slices rows out of it.
func newGrid(w, h int) Grid {
	cells := make([]float64, w*h)
	g := make(Grid, h)
	for i := range g {
		g[i] = cells[i*w : (i+1)*w : (i+1)*w]
	}
	return g
}
