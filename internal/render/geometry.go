package render

import (
	"fmt"
	"image"
)

// Geometry derives every pixel position from the grid dimensions and the
// cell size. Cells are separated by a one pixel gap that holds the gridlines.
type Geometry struct {
	Width    int
	Height   int
	CellSize int
}

// NewGeometry validates the dimensions.
func NewGeometry(width, height, cellSize int) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("render: invalid grid %dx%d", width, height)
	}
	if cellSize <= 0 {
		return Geometry{}, fmt.Errorf("render: invalid cell size %d", cellSize)
	}
	return Geometry{Width: width, Height: height, CellSize: cellSize}, nil
}

// Pitch is the distance between the origins of adjacent cells.
func (g Geometry) Pitch() int { return g.CellSize + 1 }

// Offset returns the pixel offset of gridline or cell i along either axis.
func (g Geometry) Offset(i int) int { return i*g.Pitch() + 1 }

// CanvasSize returns the pixel width and height of the canvas.
func (g Geometry) CanvasSize() (int, int) {
	return g.Pitch()*g.Width + 1, g.Pitch()*g.Height + 1
}

// CellRect returns the square covered by the cell at (row, col).
func (g Geometry) CellRect(row, col int) image.Rectangle {
	x, y := g.Offset(col), g.Offset(row)
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}
