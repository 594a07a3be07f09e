//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudLine    = 13
)

// HUD draws a one-line status readout over the top-left corner of the canvas.
type HUD struct {
	face  font.Face
	fg    color.Color
	bg    color.Color
	pixel *ebiten.Image
}

// NewHUD constructs a HUD using the built-in bitmap font.
func NewHUD() *HUD {
	h := &HUD{
		face: basicfont.Face7x13,
		fg:   color.White,
		bg:   color.RGBA{A: 0xB0},
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Status formats the readout.
func Status(gen uint64, fps float64) string {
	return fmt.Sprintf("gen %d  %.0f fps", gen, fps)
}

// Draw renders the readout for the given generation and frame rate.
func (h *HUD) Draw(screen *ebiten.Image, gen uint64, fps float64) {
	msg := Status(gen, fps)
	bounds := text.BoundString(h.face, msg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*hudPadding), float64(hudLine+2*hudPadding))
	op.ColorScale.ScaleWithColor(h.bg)
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, msg, h.face, hudPadding, hudPadding+hudLine-2, h.fg)
}
