package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-flow/internal/session"
	"github.com/vovakirdan/nebula-flow/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded sessions",
	Long: `Display the top sessions recorded for the specified game.

Without a game, show a history summary for every game followed by the
most recent sessions.

Examples:
  nebula scores
  nebula scores space-attack
  nebula scores stellar-reflex --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	var (
		id  session.GameType
		err error
	)
	if len(args) == 1 {
		if id, err = parseGame(args[0]); err != nil {
			return err
		}
	}
	if flagNoDB {
		return errors.New("scores need the progress database (drop --no-db)")
	}

	store, err := storage.Open(app.settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if id == "" {
		return printHistory(cmd.Context(), cmd.OutOrStdout(), store, flagScoresLimit)
	}
	return printTopScores(cmd.Context(), cmd.OutOrStdout(), store, id, flagScoresLimit)
}

func printTopScores(ctx context.Context, out io.Writer, store *storage.Store, id session.GameType, limit int) error {
	entries, err := store.TopScores(ctx, id, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", id.Title())
	if len(entries) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'nebula play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Mode", "Energy", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, e := range entries {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-6s  %-6d  %s\n",
			i+1, e.Score, e.Level, e.Difficulty.Title(), e.Energy, e.EndedAt.Local().Format("2006-01-02 15:04"))
	}

	if high, err := store.HighScore(ctx, id); err == nil {
		fmt.Fprintf(out, "\nBest: %d\n", high)
	}
	return nil
}

// printHistory summarises the history of every game and lists the latest sessions.
func printHistory(ctx context.Context, out io.Writer, store *storage.Store, limit int) error {
	stats, err := store.AllGameStats(ctx)
	if err != nil {
		return err
	}
	recent, err := store.RecentSessions(ctx, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Session History")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s %8s %8s %9s  %s\n", "Game", "Sessions", "Best", "Average", "Last played")
	for _, g := range session.GameTypes() {
		st, ok := stats[g]
		if !ok {
			fmt.Fprintf(out, "  %-16s %8d %8s %9s  %s\n", g.Title(), 0, "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-16s %8d %8d %9.1f  %s\n",
			g.Title(), st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out)

	if len(recent) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}
	fmt.Fprintln(out, "Recent sessions:")
	for _, e := range recent {
		fmt.Fprintf(out, "  %s  %-16s %-6s %8d  +%d energy\n",
			e.EndedAt.Local().Format("2006-01-02 15:04"), e.Game.Title(), e.Difficulty.Title(), e.Score, e.Energy)
	}
	return nil
}
