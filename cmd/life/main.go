//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"lifecanvas/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.ParseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := app.NewLogger(os.Stderr, cfg)

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer a.Close()

	game := app.NewGame(a)
	w, h := a.Geometry.CanvasSize()

	ebiten.SetWindowTitle("lifecanvas: " + a.Universe.Name())
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "err", err)
		a.Close()
		os.Exit(1)
	}
}
