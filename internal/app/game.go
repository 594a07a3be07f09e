//go:build ebiten

package app

import (
	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an App to the ebiten.Game interface. Draw is the display
// refresh: each one arms the delay gate, and the next Update past the gate
// runs a frame. Update and Draw share a goroutine, so ticks never overlap
// reads of the canvas.
type Game struct {
	app       *App
	presenter *render.Presenter
	hud       *ui.HUD
	gate      *core.FixedStep

	scale  int
	primed bool
	armed  bool
}

// NewGame constructs a Game for the provided app.
func NewGame(a *App) *Game {
	w, h := a.Geometry.CanvasSize()
	g := &Game{
		app:       a,
		presenter: render.NewPresenter(w, h),
		gate:      core.NewFixedStep(a.Scheduler.Delay()),
		scale:     a.Config.Scale,
	}
	if a.Config.HUD {
		g.hud = ui.NewHUD()
	}
	return g
}

// Update advances the simulation once the delay after the last refresh
// has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.primed {
		if err := g.app.Scheduler.Prime(); err != nil {
			return err
		}
		g.presenter.Upload(g.app.Frame())
		g.primed = true
		return nil
	}

	if g.armed && g.gate.ShouldStep() {
		if err := g.app.Scheduler.Frame(); err != nil {
			return err
		}
		g.presenter.Upload(g.app.Frame())
		g.armed = false
	}
	return nil
}

// Draw presents the last painted frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Draw(screen, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.app.Universe.Generation(), ebiten.ActualFPS())
	}
	if g.primed && !g.armed {
		g.gate.Restart()
		g.armed = true
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.presenter.Size()
	return w * g.scale, h * g.scale
}
