package render

import "image/color"

// GridRenderer strokes the static gridlines. Its output depends only on the
// geometry, never on cell state.
type GridRenderer struct {
	geom  Geometry
	color color.RGBA
}

// NewGridRenderer returns a renderer for the given geometry and line colour.
func NewGridRenderer(g Geometry, c color.RGBA) *GridRenderer {
	return &GridRenderer{geom: g, color: c}
}

// Draw strokes Width+1 vertical and Height+1 horizontal lines, each spanning
// the whole canvas along the other axis.
func (r *GridRenderer) Draw(c Canvas) error {
	g := r.geom
	cw, ch := g.CanvasSize()

	c.SetColor(r.color)
	c.SetLineWidth(1)

	for i := 0; i <= g.Width; i++ {
		x := float64(g.Offset(i))
		c.MoveTo(x, 0)
		c.LineTo(x, float64(ch))
	}
	for j := 0; j <= g.Height; j++ {
		y := float64(g.Offset(j))
		c.MoveTo(0, y)
		c.LineTo(float64(cw), y)
	}
	return c.Stroke()
}
