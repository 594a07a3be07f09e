package render

import (
	"image/color"
	"testing"

	"lifecanvas/internal/core"
	"lifecanvas/internal/universe"
)

type segment struct{ x0, y0, x1, y1 float64 }

type rect struct{ x, y, w, h float64 }

type drawOp struct {
	kind      string // "stroke" or "fill"
	color     color.Color
	lineWidth float64
	segments  []segment
	rects     []rect
}

// recorder is a Canvas that records path operations instead of rasterizing.
type recorder struct {
	w, h      int
	color     color.Color
	lineWidth float64

	curX, curY float64
	segments   []segment
	rects      []rect

	ops []drawOp
}

func newRecorder(g Geometry) *recorder {
	w, h := g.CanvasSize()
	return &recorder{w: w, h: h}
}

func (r *recorder) Width() int { return r.w }
func (r *recorder) Height() int { return r.h }
func (r *recorder) SetColor(c color.Color) { r.color = c }
func (r *recorder) SetLineWidth(w float64) { r.lineWidth = w }
func (r *recorder) MoveTo(x, y float64) { r.curX, r.curY = x, y }
func (r *recorder) DrawRectangle(x, y, w, h float64) {
	r.rects = append(r.rects, rect{x, y, w, h})
}

func (r *recorder) LineTo(x, y float64) {
	r.segments = append(r.segments, segment{r.curX, r.curY, x, y})
	r.curX, r.curY = x, y
}

func (r *recorder) Stroke() error {
	r.ops = append(r.ops, drawOp{kind: "stroke", color: r.color, lineWidth: r.lineWidth, segments: r.segments})
	r.segments, r.rects = nil, nil
	return nil
}

func (r *recorder) Fill() error {
	r.ops = append(r.ops, drawOp{kind: "fill", color: r.color, rects: r.rects})
	r.segments, r.rects = nil, nil
	return nil
}

// rectsByColor collects every filled square keyed by its colour.
func (r *recorder) rectsByColor() map[color.RGBA][]rect {
	out := map[color.RGBA][]rect{}
	for _, op := range r.ops {
		if op.kind != "fill" {
			continue
		}
		c := color.RGBAModel.Convert(op.color).(color.RGBA)
		out[c] = append(out[c], op.rects...)
	}
	return out
}

// staticEngine serves a fixed buffer and mutates nothing on Step.
type staticEngine struct {
	size  core.Size
	cells []uint8
}

func (e *staticEngine) Name() string { return "static" }
func (e *staticEngine) Size() core.Size { return e.size }
func (e *staticEngine) Reset(int64) {}
func (e *staticEngine) Step() {}
func (e *staticEngine) Cells() []uint8 { return e.cells }

func universeOf(t *testing.T, w, h int, cells []uint8) *universe.Universe {
	t.Helper()
	if cells == nil {
		cells = make([]uint8, w*h)
	}
	u, err := universe.Wrap(&staticEngine{size: core.Size{W: w, H: h}, cells: cells})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	return u
}
