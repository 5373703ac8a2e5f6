package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/nebula-flow/internal/core"
)

type fakeGame struct {
	finishAt     int
	exitTerminal bool

	steps int
	done  bool
	seen  []core.InputFrame
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.done {
		return core.StepResult{State: core.GameState{GameOver: true}}
	}
	g.steps++
	g.seen = append(g.seen, in.Clone())
	if g.finishAt > 0 && g.steps == g.finishAt || g.exitTerminal && in.Has(core.ActionExit) {
		g.done = true
		return core.StepResult{State: core.GameState{Score: g.steps, GameOver: true}, Finished: true}
	}
	return core.StepResult{State: core.GameState{Score: g.steps}}
}

func (g *fakeGame) TickInterval() time.Duration { return time.Millisecond }

func (g *fakeGame) Result() (Result, bool) {
	if !g.done {
		return Result{}, false
	}
	r := NewResult(SpaceAttack, "normal")
	r.Score = g.steps
	return r, true
}

type countingRecorder struct {
	results []Result
}

func (c *countingRecorder) RecordSession(_ context.Context, r Result) error {
	c.results = append(c.results, r)
	return nil
}

type runOutcome struct {
	r   Result
	ok  bool
	err error
}

func startDriver(ctx context.Context, t *testing.T, g Runner, rec Recorder, inputs <-chan core.InputFrame) (chan<- time.Time, <-chan runOutcome) {
	t.Helper()
	ticks := make(chan time.Time)
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := NewDriver(rec,
		WithTicker(func(time.Duration) (<-chan time.Time, func()) { return ticks, func() {} }),
		WithClock(func() time.Time { return stamp }),
	)
	out := make(chan runOutcome, 1)
	go func() {
		r, ok, err := d.Run(ctx, g, inputs)
		out <- runOutcome{r, ok, err}
	}()
	return ticks, out
}

func TestDriverRecordsResultOnce(t *testing.T) {
	g := &fakeGame{finishAt: 3}
	rec := &countingRecorder{}
	ticks, out := startDriver(context.Background(), t, g, rec, make(chan core.InputFrame))

	for i := 0; i < 3; i++ {
		ticks <- time.Time{}
	}
	res := <-out

	if res.err != nil || !res.ok {
		t.Fatalf("Run() = ok %v err %v, want result", res.ok, res.err)
	}
	if res.r.Score != 3 {
		t.Errorf("Score = %d, want 3", res.r.Score)
	}
	if res.r.EndedAt.IsZero() {
		t.Error("result was not stamped")
	}
	if len(rec.results) != 1 {
		t.Fatalf("recorder called %d times, want 1", len(rec.results))
	}
	if rec.results[0].ID != res.r.ID {
		t.Error("recorded result differs from returned result")
	}
}

func TestDriverMergesInputsIntoNextTick(t *testing.T) {
	g := &fakeGame{finishAt: 2}
	inputs := make(chan core.InputFrame)
	ticks, out := startDriver(context.Background(), t, g, nil, inputs)

	press := core.NewInputFrame()
	press.Set(core.ActionPress)
	inputs <- press
	tap := core.NewInputFrame()
	tap.AddTap(core.TapCellIndex(4))
	inputs <- tap
	ticks <- time.Time{}
	ticks <- time.Time{}
	<-out

	if len(g.seen) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.seen))
	}
	first := g.seen[0]
	if !first.Has(core.ActionPress) || !first.Has(core.ActionTap) || len(first.Taps) != 1 {
		t.Errorf("first frame = %+v, want press and one tap", first)
	}
	if !g.seen[1].Empty() {
		t.Errorf("second frame = %+v, want empty", g.seen[1])
	}
}

func TestDriverCancellationYieldsNoResult(t *testing.T) {
	g := &fakeGame{}
	rec := &countingRecorder{}
	ctx, cancel := context.WithCancel(context.Background())
	ticks, out := startDriver(ctx, t, g, rec, make(chan core.InputFrame))

	ticks <- time.Time{}
	cancel()
	res := <-out

	if res.ok {
		t.Error("cancelled session produced a result")
	}
	if !errors.Is(res.err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", res.err)
	}
	if len(rec.results) != 0 {
		t.Errorf("recorder called %d times, want 0", len(rec.results))
	}
}

func TestDriverClosedInputsExit(t *testing.T) {
	tests := []struct {
		name         string
		exitTerminal bool
		wantResult   bool
	}{
		{"exit-terminal game emits result", true, true},
		{"round-based game aborts", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{exitTerminal: tt.exitTerminal}
			rec := &countingRecorder{}
			inputs := make(chan core.InputFrame)
			ticks, out := startDriver(context.Background(), t, g, rec, inputs)

			close(inputs)
			ticks <- time.Time{}
			res := <-out

			if res.err != nil {
				t.Fatalf("Run() error = %v", res.err)
			}
			if res.ok != tt.wantResult {
				t.Errorf("ok = %v, want %v", res.ok, tt.wantResult)
			}
			want := 0
			if tt.wantResult {
				want = 1
			}
			if len(rec.results) != want {
				t.Errorf("recorder called %d times, want %d", len(rec.results), want)
			}
		})
	}
}

func TestParseGameType(t *testing.T) {
	for _, g := range GameTypes() {
		got, err := ParseGameType(string(g))
		if err != nil || got != g {
			t.Errorf("ParseGameType(%q) = %q, %v", g, got, err)
		}
	}
	if _, err := ParseGameType("snake"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("ParseGameType(snake) err = %v, want ErrUnknownGame", err)
	}
}

type failingRecorder struct{ err error }

func (f failingRecorder) RecordSession(context.Context, Result) error { return f.err }

func TestRecordersFanOut(t *testing.T) {
	first, last := &countingRecorder{}, &countingRecorder{}
	boom := errors.New("boom")
	rs := Recorders{first, nil, failingRecorder{boom}, last}

	err := rs.RecordSession(context.Background(), NewResult(MindOrbit, "easy"))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(first.results) != 1 || len(last.results) != 1 {
		t.Errorf("recorders called %d/%d times, want 1/1", len(first.results), len(last.results))
	}
}
