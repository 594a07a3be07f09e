// Package app wires the universe, canvas, renderer and frame scheduler into
// one explicit application value.
package app

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/scheduler"
	"lifecanvas/internal/universe"

	"github.com/gogpu/gg"
	"github.com/logrusorgru/aurora"

	// Engines register themselves with core.
	_ "lifecanvas/internal/sims/life"
)

// App owns everything a running canvas needs. It replaces process-wide
// state: callers create one, drive its Scheduler and Close it when done.
type App struct {
	Config    *Config
	Universe  *universe.Universe
	Geometry  render.Geometry
	Palette   render.Palette
	Canvas    *gg.Context
	Renderer  *render.Renderer
	Scheduler *scheduler.Scheduler

	log *slog.Logger
}

// New creates the universe through the configured engine factory and builds
// the canvas and scheduler around it. Extra scheduler options are applied
// after the ones derived from cfg.
func New(cfg *Config, log *slog.Logger, opts ...scheduler.Option) (*App, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	gg.SetLogger(log)

	factory, err := core.Lookup(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("app: engine %q (have %s): %w: %w",
			cfg.Engine, strings.Join(core.Names(), ", "), universe.ErrEngineUnavailable, err)
	}
	u, err := universe.New(factory, cfg.EngineOptions())
	if err != nil {
		return nil, fmt.Errorf("app: init universe: %w", err)
	}
	if cfg.Seed != 0 {
		if err := u.Reset(cfg.Seed); err != nil {
			return nil, fmt.Errorf("app: seed universe: %w", err)
		}
	}

	geom, err := render.NewGeometry(u.Width(), u.Height(), cfg.CellSize)
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	canvas := render.NewCanvas(geom, palette.Dead)
	renderer := render.NewRenderer(canvas, geom, palette)

	schedOpts := []scheduler.Option{
		scheduler.WithDelay(cfg.Delay),
		scheduler.WithLogger(log),
	}
	schedOpts = append(schedOpts, opts...)

	a := &App{
		Config:    cfg,
		Universe:  u,
		Geometry:  geom,
		Palette:   palette,
		Canvas:    canvas,
		Renderer:  renderer,
		Scheduler: scheduler.New(u, renderer, schedOpts...),
		log:       log,
	}
	w, h := geom.CanvasSize()
	log.Info("universe ready",
		"engine", u.Name(),
		"width", u.Width(),
		"height", u.Height(),
		"canvas_width", w,
		"canvas_height", h)
	return a, nil
}

// Frame returns a copy of the canvas pixels. The copy stays valid after
// later frames.
func (a *App) Frame() *image.RGBA {
	img, ok := a.Canvas.Image().(*image.RGBA)
	if !ok {
		return nil
	}
	return img
}

// SavePNG writes the current canvas to path.
func (a *App) SavePNG(path string) error {
	if err := a.Canvas.SavePNG(path); err != nil {
		return fmt.Errorf("app: save %s: %w", path, err)
	}
	a.log.Info("snapshot written", "path", path, "generation", a.Universe.Generation())
	return nil
}

// WriteText prints the current generation as text.
func (a *App) WriteText(w io.Writer, au aurora.Aurora) error {
	return render.WriteText(w, a.Universe.Cells(), au)
}

// Close releases the canvas.
func (a *App) Close() error {
	return a.Canvas.Close()
}
