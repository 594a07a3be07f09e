// Package scheduler drives the tick-then-paint frame loop.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"lifecanvas/internal/universe"
)

// State is the position of the scheduler in its frame cycle.
type State int32

// Frame cycle states. There is no terminal state: a running scheduler
// returns to Idle only when stopped or after an error.
const (
	Idle State = iota
	Scheduled
	Ticking
	Rendering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scheduled:
		return "scheduled"
	case Ticking:
		return "ticking"
	case Rendering:
		return "rendering"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// DefaultDelay is the minimum delay between a refresh and the next tick.
const DefaultDelay = 10 * time.Millisecond

// FrameRenderer paints one generation.
type FrameRenderer interface {
	Render(v universe.View) error
}

// FrameHook runs after a frame is painted and before the next one is
// scheduled. It may read the canvas and the universe freely.
type FrameHook func(gen uint64) error

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDelay sets the minimum delay between a refresh and the next tick.
func WithDelay(d time.Duration) Option {
	return func(s *Scheduler) { s.delay = d }
}

// WithRefresher sets the display-synchronised wait. The default is a
// 60Hz TickerRefresh.
func WithRefresher(r Refresher) Option {
	return func(s *Scheduler) { s.refresh = r }
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFrameHook registers a hook called after every painted frame.
func WithFrameHook(h FrameHook) Option {
	return func(s *Scheduler) { s.hook = h }
}

// Scheduler advances a universe and repaints it, one frame at a time.
// Within a frame the tick always completes before the cell buffer is read.
type Scheduler struct {
	u        *universe.Universe
	renderer FrameRenderer
	delay    time.Duration
	refresh  Refresher
	hook     FrameHook
	log      *slog.Logger

	state  atomic.Int32
	frames atomic.Uint64
}

// New returns an idle scheduler.
func New(u *universe.Universe, r FrameRenderer, opts ...Option) *Scheduler {
	s := &Scheduler{
		u:        u,
		renderer: r,
		delay:    DefaultDelay,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.delay < 0 {
		s.delay = 0
	}
	return s
}

// State returns the current state. Safe for concurrent use.
func (s *Scheduler) State() State { return State(s.state.Load()) }

// Frames returns how many frames have been painted, including the initial
// one painted by Prime.
func (s *Scheduler) Frames() uint64 { return s.frames.Load() }

// Delay returns the minimum delay between refresh and tick.
func (s *Scheduler) Delay() time.Duration { return s.delay }

func (s *Scheduler) set(st State) { s.state.Store(int32(st)) }

// Prime paints the current generation without ticking and arms the
// scheduler.
func (s *Scheduler) Prime() error {
	s.set(Rendering)
	if err := s.paint(); err != nil {
		s.set(Idle)
		return err
	}
	s.set(Scheduled)
	return nil
}

// Frame ticks the universe and then paints the new generation.
func (s *Scheduler) Frame() error {
	s.set(Ticking)
	if err := s.u.Tick(); err != nil {
		s.set(Idle)
		return fmt.Errorf("scheduler: tick: %w", err)
	}
	s.set(Rendering)
	if err := s.paint(); err != nil {
		s.set(Idle)
		return err
	}
	s.set(Scheduled)
	return nil
}

func (s *Scheduler) paint() error {
	if err := s.renderer.Render(s.u.Cells()); err != nil {
		return fmt.Errorf("scheduler: render generation %d: %w", s.u.Generation(), err)
	}
	s.frames.Add(1)
	if s.hook != nil {
		if err := s.hook(s.u.Generation()); err != nil {
			return fmt.Errorf("scheduler: frame hook: %w", err)
		}
	}
	return nil
}

// Run paints the initial generation and then repeats: wait for a refresh,
// wait the minimum delay, run a frame. It returns nil once ctx is cancelled
// and the first frame error otherwise.
func (s *Scheduler) Run(ctx context.Context) error {
	ref := s.refresh
	if ref == nil {
		tr := NewTickerRefresh(0)
		defer tr.Stop()
		ref = tr
	}
	defer s.set(Idle)

	if err := s.Prime(); err != nil {
		return err
	}
	s.log.Info("frame loop started",
		"engine", s.u.Name(),
		"width", s.u.Width(),
		"height", s.u.Height(),
		"delay", s.delay)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	for {
		if err := ref.WaitRefresh(ctx); err != nil {
			return s.stopped(ctx, err)
		}
		timer.Reset(s.delay)
		select {
		case <-ctx.Done():
			return s.stopped(ctx, ctx.Err())
		case <-timer.C:
		}
		if err := ctx.Err(); err != nil {
			return s.stopped(ctx, err)
		}
		if err := s.Frame(); err != nil {
			s.log.Error("frame failed", "generation", s.u.Generation(), "err", err)
			return err
		}
		s.log.Debug("frame", "generation", s.u.Generation())
	}
}

func (s *Scheduler) stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		s.log.Info("frame loop stopped", "generation", s.u.Generation(), "frames", s.Frames())
		return nil
	}
	return fmt.Errorf("scheduler: refresh: %w", err)
}
