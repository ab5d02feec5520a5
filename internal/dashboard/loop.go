package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/go-logr/logr"

	"github.com/Dicklesworthstone/sysdash/internal/config"
	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
	"github.com/Dicklesworthstone/sysdash/internal/ui"
)

// Loop is the interactive dashboard. Each iteration refreshes the snapshot
// if the interval has elapsed, draws a frame sized to the terminal, then
// waits briefly for a key.
type Loop struct {
	surface   Surface
	provider  sampler.Provider
	collector *sampler.Collector
	view      *ui.View
	log       logr.Logger

	interval    time.Duration
	pollTimeout time.Duration
	now         func() time.Time
}

func NewLoop(cfg config.Config, surface Surface, provider sampler.Provider, log logr.Logger) *Loop {
	return &Loop{
		surface:     surface,
		provider:    provider,
		collector:   sampler.NewCollector(log),
		view:        ui.NewView(cfg.Interval),
		log:         log,
		interval:    cfg.Interval,
		pollTimeout: cfg.PollTimeout,
		now:         time.Now,
	}
}

// Run blocks until a quit key is pressed, ctx is done, or the surface fails.
// The surface is restored exactly once on every exit path, panics included.
// A restore error is returned only when nothing else went wrong first.
func (l *Loop) Run(ctx context.Context) (err error) {
	defer func() {
		if rerr := l.surface.Restore(); rerr != nil {
			l.log.Error(rerr, "restoring terminal")
			if err == nil {
				err = fmt.Errorf("restore terminal: %w", rerr)
			}
		}
	}()

	if err := l.surface.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalInit, err)
	}

	var (
		snap    model.Snapshot
		last    time.Time
		sampled bool
	)
	for {
		if ctx.Err() != nil {
			l.log.V(1).Info("context done, stopping")
			return nil
		}

		if !sampled || l.now().Sub(last) >= l.interval {
			snap = l.collector.Collect(l.provider)
			last, sampled = l.now(), true
			l.log.V(1).Info("refreshed", "processes", snap.ProcessCount)
		}

		w, h := l.surface.Size()
		if err := l.surface.Draw(l.view.Render(snap, w, h)); err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return fmt.Errorf("%w: %w", ErrDraw, err)
		}

		msg, ok, err := l.surface.PollKey(l.pollTimeout)
		switch {
		case errors.Is(err, ErrClosed):
			return nil
		case err != nil:
			return fmt.Errorf("poll input: %w", err)
		case ok && key.Matches(msg, ui.Keys.Quit):
			l.log.V(1).Info("quit requested", "key", msg.String())
			return nil
		}
	}
}
