package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas is the subset of an immediate-mode 2D context the renderers draw
// with. *gg.Context satisfies it.
type Canvas interface {
	Width() int
	Height() int
	SetColor(c color.Color)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke() error
	DrawRectangle(x, y, w, h float64)
	Fill() error
}

var _ Canvas = (*gg.Context)(nil)

// NewCanvas allocates a software canvas sized for g and cleared to bg.
func NewCanvas(g Geometry, bg color.Color) *gg.Context {
	w, h := g.CanvasSize()
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.FromColor(bg))
	return dc
}
