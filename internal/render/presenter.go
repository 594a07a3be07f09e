//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Presenter uploads finished canvas frames into an ebiten image.
type Presenter struct {
	w, h int
	img  *ebiten.Image
}

// NewPresenter allocates a presenter for a canvas of size w*h.
func NewPresenter(w, h int) *Presenter {
	return &Presenter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload replaces the presenter image with the pixels of frame. Frames of
// the wrong size are ignored.
func (p *Presenter) Upload(frame *image.RGBA) {
	if frame == nil || frame.Bounds().Dx() != p.w || frame.Bounds().Dy() != p.h {
		return
	}
	p.img.WritePixels(frame.Pix)
}

// Draw blits the last uploaded frame onto dst.
func (p *Presenter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Presenter) Size() (int, int) { return p.w, p.h }
