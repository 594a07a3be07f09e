//go:build !ebiten

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lifecanvas/internal/app"
)

// Without the ebiten tag the canvas is driven headlessly: frames go to the
// terminal as text and optionally to PNG files. Build with -tags ebiten for
// the window.
func main() {
	cfg, err := app.ParseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := app.NewLogger(os.Stderr, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunHeadless(ctx, cfg, log, os.Stdout); err != nil {
		log.Error("headless run failed", "err", err)
		stop()
		os.Exit(1)
	}
}
