package render

import (
	"fmt"

	"lifecanvas/internal/universe"
)

// CellRenderer paints every cell of a view with its palette colour.
type CellRenderer struct {
	geom    Geometry
	palette Palette
}

// NewCellRenderer returns a renderer for the given geometry and palette.
func NewCellRenderer(g Geometry, p Palette) *CellRenderer {
	return &CellRenderer{geom: g, palette: p}
}

// Draw repaints all cells from v. Squares are grouped into one fill per
// palette entry, dead cells first. The view is checked before any drawing,
// so a stale view leaves the canvas untouched.
func (r *CellRenderer) Draw(c Canvas, v universe.View) error {
	if err := v.Err(); err != nil {
		return err
	}
	if v.Width() != r.geom.Width || v.Height() != r.geom.Height {
		return fmt.Errorf("render: view %dx%d does not match geometry %dx%d",
			v.Width(), v.Height(), r.geom.Width, r.geom.Height)
	}

	size := float64(r.geom.CellSize)
	for _, alive := range []bool{false, true} {
		var fill uint8
		if alive {
			fill = universe.Alive
		}
		c.SetColor(r.palette.Fill(fill))

		n := 0
		for row := 0; row < r.geom.Height; row++ {
			for col := 0; col < r.geom.Width; col++ {
				on, err := v.Alive(row, col)
				if err != nil {
					return err
				}
				if on != alive {
					continue
				}
				c.DrawRectangle(float64(r.geom.Offset(col)), float64(r.geom.Offset(row)), size, size)
				n++
			}
		}
		if n == 0 {
			continue
		}
		if err := c.Fill(); err != nil {
			return fmt.Errorf("render: fill cells: %w", err)
		}
	}
	return nil
}
