package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-flow/internal/storage"
)

var (
	flagResetYes  bool
	flagResetGame string
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all progress and session history",
	Long: `Write every progress value back to its default and delete the session
history. This cannot be undone, so --yes is required.

With --game only the session history of that game is deleted; lifetime
progress is kept.

Examples:
  nebula reset --yes
  nebula reset --game space-attack --yes`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Confirm the reset")
	resetCmd.Flags().StringVar(&flagResetGame, "game", "", "Only clear the session history of this game")
}

func runReset(cmd *cobra.Command, _ []string) error {
	if !flagResetYes {
		return errors.New("refusing to reset without --yes")
	}
	ctx := cmd.Context()

	if flagResetGame != "" {
		id, err := parseGame(flagResetGame)
		if err != nil {
			return err
		}
		if flagNoDB {
			return errors.New("--game needs the progress database (drop --no-db)")
		}
		store, err := storage.Open(app.settings.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ClearSessions(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "History of %s cleared.\n", id.Title())
		return nil
	}

	b, err := openBackends(ctx, app.logger)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := b.progress.Reset(ctx); err != nil {
		return err
	}
	if b.db != nil {
		if err := b.db.ClearHistory(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
	return nil
}
