package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-flow/internal/core"
)

// Runner is the part of a game a driver needs.
type Runner interface {
	Step(in core.InputFrame) core.StepResult
	TickInterval() time.Duration
	Result() (Result, bool)
}

// Recorder consumes finished session results.
type Recorder interface {
	RecordSession(ctx context.Context, r Result) error
}

// Recorders fans a result out to several recorders in order. Every recorder
// is called even when an earlier one fails.
type Recorders []Recorder

// RecordSession implements Recorder.
func (rs Recorders) RecordSession(ctx context.Context, r Result) error {
	var errs []error
	for _, rec := range rs {
		if rec == nil {
			continue
		}
		if err := rec.RecordSession(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TickerFunc starts a periodic tick source and returns its channel and a stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Driver owns the periodic invocation of a session and its cancellation.
// Each session still advances by its own fixed nominal step regardless of
// the wall time between ticks.
type Driver struct {
	recorder Recorder
	logger   *log.Logger
	ticker   TickerFunc
	interval time.Duration
	now      func() time.Time
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLogger sets the driver logger.
func WithLogger(l *log.Logger) DriverOption {
	return func(d *Driver) { d.logger = l }
}

// WithTicker replaces the wall-clock ticker (tests use a manual channel).
func WithTicker(f TickerFunc) DriverOption {
	return func(d *Driver) { d.ticker = f }
}

// WithClock sets the wall clock used to stamp results.
func WithClock(now func() time.Time) DriverOption {
	return func(d *Driver) { d.now = now }
}

// WithInterval overrides the tick interval the game asks for.
// Shorter intervals fast-forward a session without changing its physics.
func WithInterval(iv time.Duration) DriverOption {
	return func(d *Driver) { d.interval = iv }
}

// NewDriver creates a driver that forwards results to rec (which may be nil).
func NewDriver(rec Recorder, opts ...DriverOption) *Driver {
	d := &Driver{
		recorder: rec,
		logger:   log.New(io.Discard),
		ticker:   realTicker,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run ticks g until it reaches a terminal phase, ctx is cancelled, or inputs is
// closed. Input frames received between ticks are merged into the next step.
// Closing inputs is treated as an exit request. The result is returned and
// recorded at most once; a cancelled session yields no result.
func (d *Driver) Run(ctx context.Context, g Runner, inputs <-chan core.InputFrame) (Result, bool, error) {
	interval := d.interval
	if interval <= 0 {
		interval = g.TickInterval()
	}
	ticks, stop := d.ticker(interval)
	defer stop()

	frame := core.NewInputFrame()
	exiting := false
	receive := func(in core.InputFrame, ok bool) {
		if !ok {
			inputs = nil
			exiting = true
			frame.Set(core.ActionExit)
			return
		}
		frame.Merge(in)
	}

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("session cancelled", "reason", ctx.Err())
			return Result{}, false, ctx.Err()

		case in, ok := <-inputs:
			receive(in, ok)

		case <-ticks:
			// Fold input that arrived together with the tick.
			for pending := true; pending && inputs != nil; {
				select {
				case in, ok := <-inputs:
					receive(in, ok)
				default:
					pending = false
				}
			}

			res := g.Step(frame)
			frame.Clear()

			if res.Finished {
				return d.finish(ctx, g)
			}
			if exiting {
				d.logger.Debug("session exited without result", "score", res.State.Score)
				return Result{}, false, nil
			}
		}
	}
}

func (d *Driver) finish(ctx context.Context, g Runner) (Result, bool, error) {
	r, ok := g.Result()
	if !ok {
		return Result{}, false, nil
	}
	r = r.Stamped(d.now())
	d.logger.Info("session finished", "game", r.Game, "score", r.Score, "energy", r.EnergyEarned)

	if d.recorder != nil {
		if err := d.recorder.RecordSession(ctx, r); err != nil {
			return r, true, fmt.Errorf("session: record result: %w", err)
		}
	}
	return r, true, nil
}
