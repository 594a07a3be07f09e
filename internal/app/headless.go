package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"lifecanvas/internal/scheduler"

	"github.com/logrusorgru/aurora"
	"golang.org/x/sync/errgroup"
)

type numberedFrame struct {
	gen uint64
	img *image.RGBA
}

// RunHeadless drives the frame loop without a window. Refresh pulses come
// from a ticker at cfg.Refresh. Each frame can be printed as text to out and
// encoded as PNG on a separate goroutine; the loop stops after cfg.Frames
// ticks or when ctx is cancelled.
func RunHeadless(ctx context.Context, cfg *Config, log *slog.Logger, out io.Writer) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.SnapshotDir != "" {
		if err := os.MkdirAll(cfg.SnapshotDir, 0o755); err != nil {
			return fmt.Errorf("app: snapshot dir: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	frames := make(chan numberedFrame, 4)
	au := aurora.NewAurora(cfg.Color)

	var a *App
	hook := func(gen uint64) error {
		if cfg.Text {
			fmt.Fprintf(out, "generation %d\n", gen)
			if err := a.WriteText(out, au); err != nil {
				return err
			}
		}
		if cfg.SnapshotDir != "" {
			select {
			case frames <- numberedFrame{gen: gen, img: a.Frame()}:
			case <-gctx.Done():
			}
		}
		if cfg.Frames > 0 && gen >= uint64(cfg.Frames) {
			cancel()
		}
		return nil
	}

	refresh := scheduler.NewTickerRefresh(cfg.Refresh)
	defer refresh.Stop()

	a, err := New(cfg, log, scheduler.WithRefresher(refresh), scheduler.WithFrameHook(hook))
	if err != nil {
		return err
	}
	defer a.Close()

	g.Go(func() error {
		defer close(frames)
		return a.Scheduler.Run(gctx)
	})
	g.Go(func() error {
		for f := range frames {
			path := filepath.Join(cfg.SnapshotDir, fmt.Sprintf("frame-%06d.png", f.gen))
			if err := writePNG(path, f.img); err != nil {
				return err
			}
			log.Debug("frame written", "path", path)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Snapshot != "" {
		if err := a.SavePNG(cfg.Snapshot); err != nil {
			return err
		}
	}
	log.Info("headless run finished",
		"generation", a.Universe.Generation(),
		"frames", a.Scheduler.Frames())
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("app: encode %s: %w", path, err)
	}
	return f.Close()
}
