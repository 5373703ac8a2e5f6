package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-flow/internal/platform/tui"
	"github.com/vovakirdan/nebula-flow/internal/progress"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

var flagStatsPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime progress",
	Long: `Open the statistics dashboard: energy, streaks, focus level and the
best sessions of every game. With --plain the summary is printed instead.

Examples:
  nebula stats
  nebula stats --plain`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsPlain, "plain", false, "Print a text summary instead of the dashboard")
}

func runStats(cmd *cobra.Command, _ []string) error {
	logger := app.logger
	if !flagStatsPlain {
		var closeLog func()
		logger, closeLog = tuiLogger()
		defer closeLog()
	}

	b, err := openBackends(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer b.Close()

	if flagStatsPlain {
		printStats(cmd.OutOrStdout(), b.progress, time.Now())
		return nil
	}
	return tui.RunStats(b.services(logger), runtimeConfig())
}

func printStats(out io.Writer, ps *progress.Store, now time.Time) {
	rec := ps.Record()

	fmt.Fprintln(out, "Nebula Flow - Progress")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Energy fragments   %d (earned %d)\n", rec.EnergyFragments, rec.TotalEnergyEarned)
	fmt.Fprintf(out, "  Streak             %d (best %d)\n", rec.CurrentStreak, rec.BestStreak)
	fmt.Fprintf(out, "  Games played       %d\n", rec.TotalGamesPlayed)
	fmt.Fprintf(out, "  Play time          %s\n", time.Duration(rec.TotalPlayTime*float64(time.Second)).Round(time.Second))
	fmt.Fprintf(out, "  Days active        %d\n", ps.DaysActive(now))
	fmt.Fprintf(out, "  Focus level        %d/100\n", ps.AverageFocusLevel())
	fmt.Fprintf(out, "  Perfect rounds     %d\n", rec.PerfectRounds)
	fmt.Fprintf(out, "  Best score         %d\n", rec.BestScore())
	fmt.Fprintf(out, "  Favorite game      %s\n", rec.FavoriteGame)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-16s %6s %8s %8s %6s\n", "Game", "Played", "Best", "Average", "Level")
	for _, g := range session.GameTypes() {
		st := rec.Game(g)
		fmt.Fprintf(out, "  %-16s %6d %8d %8d %6d\n", g.Title(), st.GamesPlayed, st.HighScore, st.AverageScore(), st.HighestLevel)
	}
	fmt.Fprintln(out)

	if rec.HasReaction() {
		fmt.Fprintf(out, "  Best reaction      %d ms (avg %d ms)\n", rec.StellarReflex.BestReactionMs, rec.StellarReflex.AvgReactionMs)
	}
	fmt.Fprintf(out, "  Best accuracy      %d%%\n", rec.CosmicBalance.BestAccuracy)
	fmt.Fprintf(out, "  Focus time         %ds\n", rec.CosmicBalance.TotalFocusTime)
}
