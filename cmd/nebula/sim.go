package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/progress"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

var (
	flagSimTicks  int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a headless session with a scripted player",
	Long: `Drive one session without a terminal UI. A simple scripted player
starts the game and sends input at fixed intervals; sessions that never end
on their own are exited after --ticks steps.

The result goes to a throwaway in-memory progress store unless --record is set.

Examples:
  nebula sim stellar-reflex --seed 7
  nebula sim space-attack --ticks 600 --difficulty hard
  nebula sim cosmic-balance --record`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 4000, "Steps before the scripted player exits")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the result in the progress database")
}

func runSim(cmd *cobra.Command, args []string) error {
	id, err := parseGame(args[0])
	if err != nil {
		return err
	}
	seed := flagSeed
	if seed == 0 {
		if seed, err = core.NewSeed(); err != nil {
			return err
		}
	}

	game, err := registry.Create(id, registry.Options{Difficulty: app.difficulty, Profiles: app.profiles})
	if err != nil {
		return err
	}
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	game.Reset(cfg)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var ps *progress.Store
	var rec session.Recorder
	if flagSimRecord {
		b, err := openBackends(ctx, app.logger)
		if err != nil {
			return err
		}
		defer b.Close()
		ps, rec = b.progress, b.recorder()
	} else {
		if ps, err = progress.Open(ctx, progress.NewMemoryKV()); err != nil {
			return err
		}
		rec = ps
	}

	ticks := make(chan time.Time)
	inputs := make(chan core.InputFrame)
	driver := session.NewDriver(rec,
		session.WithLogger(app.logger.WithPrefix("sim")),
		session.WithTicker(func(time.Duration) (<-chan time.Time, func()) { return ticks, func() {} }),
	)

	p := newPlayer(id, app.profiles.MindOrbit.GridSize, core.NewSource(seed^0x5f5f))
	go feed(ctx, p, inputs, ticks, flagSimTicks)

	app.logger.Debug("simulating", "game", id, "difficulty", app.difficulty, "seed", seed)
	r, ok, err := driver.Run(ctx, game, inputs)
	cancel()
	if err != nil {
		return err
	}

	printSim(cmd.OutOrStdout(), id, seed, r, ok, ps.Record())
	return nil
}

// player is a scripted stand-in for a person at the keyboard.
type player func(tick int) core.InputFrame

func newPlayer(id session.GameType, gridSize int, src core.Source) player {
	return func(tick int) core.InputFrame {
		in := core.NewInputFrame()
		if tick == 0 {
			in.Set(core.ActionStart)
			return in
		}
		switch id {
		case session.CosmicBalance:
			// Alternate holding and drifting.
			if tick%30 == 1 {
				if (tick/30)%2 == 0 {
					in.Set(core.ActionPress)
				} else {
					in.Set(core.ActionRelease)
				}
			}
		case session.SpaceAttack:
			if tick%8 == 0 {
				in.Set(core.ActionPress)
			}
		case session.MindOrbit:
			if tick%12 == 0 {
				in.AddTap(core.TapCellIndex(src.IntN(gridSize * gridSize)))
			}
		case session.StellarReflex:
			if tick%15 == 0 {
				in.Set(core.ActionPress)
			}
		}
		return in
	}
}

// feed sends the player's input and then a tick for every step. After limit
// steps the input channel is closed, which the driver treats as an exit.
func feed(ctx context.Context, p player, inputs chan<- core.InputFrame, ticks chan<- time.Time, limit int) {
	for i := 0; ; i++ {
		if i == limit {
			close(inputs)
			inputs = nil
		}
		if inputs != nil {
			if in := p(i); !in.Empty() {
				select {
				case inputs <- in:
				case <-ctx.Done():
					return
				}
			}
		}
		select {
		case ticks <- time.Time{}:
		case <-ctx.Done():
			return
		}
	}
}

func printSim(out io.Writer, id session.GameType, seed int64, r session.Result, ok bool, rec progress.Record) {
	fmt.Fprintf(out, "%s (%s, seed %d)\n\n", id.Title(), app.difficulty.Title(), seed)
	if !ok {
		fmt.Fprintln(out, "  Session ended without a result.")
		return
	}
	m := r.Metrics
	fmt.Fprintf(out, "  Score          %d\n", r.Score)
	fmt.Fprintf(out, "  Level          %d\n", m.Level)
	fmt.Fprintf(out, "  Rounds         %d\n", m.Rounds)
	switch id {
	case session.CosmicBalance:
		fmt.Fprintf(out, "  Accuracy       %d%% (%d perfect, %ds in zone)\n", m.Accuracy, m.PerfectRounds, m.FocusTime)
	case session.SpaceAttack:
		fmt.Fprintf(out, "  Destroyed      %d (%d escaped)\n", m.Destroyed, m.Escaped)
	case session.StellarReflex:
		fmt.Fprintf(out, "  Avg reaction   %d ms\n", m.AvgReactionMs)
	}
	fmt.Fprintf(out, "  Energy         %d\n", r.EnergyEarned)
	fmt.Fprintf(out, "  Duration       %s\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(out, "\n  Fragments now  %d\n", rec.EnergyFragments)
}
