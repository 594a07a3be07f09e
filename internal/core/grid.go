package core

// Index returns the linear row-major index of (row, col) in a grid of the
// given width.
func Index(width, row, col int) int { return row*width + col }

// Coords is the inverse of Index.
func Coords(width, idx int) (row, col int) { return idx / width, idx % width }

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return Index(g.W, row, col) }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// At returns the value at (row, col) with toroidal wrapping.
func (g *ByteGrid) At(row, col int) uint8 {
	row, col = g.Wrap(row, col)
	return g.data[g.Index(row, col)]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
