package render

import (
	"fmt"
	"image/color"

	"lifecanvas/internal/universe"
)

// Renderer draws one frame: background, gridlines, then cells.
type Renderer struct {
	canvas     Canvas
	background color.RGBA
	grid       *GridRenderer
	cells      *CellRenderer
}

// NewRenderer binds the grid and cell renderers to a canvas.
func NewRenderer(c Canvas, g Geometry, p Palette) *Renderer {
	return &Renderer{
		canvas:     c,
		background: p.Dead,
		grid:       NewGridRenderer(g, p.Grid),
		cells:      NewCellRenderer(g, p),
	}
}

// Render paints the grid and then the cells of v. The canvas is cleared
// first so antialiased gridlines do not accumulate across frames.
func (r *Renderer) Render(v universe.View) error {
	if err := v.Err(); err != nil {
		return err
	}
	r.canvas.SetColor(r.background)
	r.canvas.DrawRectangle(0, 0, float64(r.canvas.Width()), float64(r.canvas.Height()))
	if err := r.canvas.Fill(); err != nil {
		return fmt.Errorf("render: clear: %w", err)
	}
	if err := r.grid.Draw(r.canvas); err != nil {
		return fmt.Errorf("render: grid: %w", err)
	}
	return r.cells.Draw(r.canvas, v)
}
