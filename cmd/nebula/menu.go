package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-flow/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start Nebula Flow in interactive menu mode.

Up/Down picks a game, Left/Right the difficulty and Enter starts it.
Tab opens the statistics dashboard. After a session ends, Esc
returns to the menu.

Examples:
  nebula menu
  nebula menu --difficulty easy
  nebula menu --no-db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog := tuiLogger()
	defer closeLog()

	b, err := openBackends(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer b.Close()

	return tui.RunSession(b.services(logger), runtimeConfig())
}
