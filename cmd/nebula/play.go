package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-flow/internal/platform/tui"
	"github.com/vovakirdan/nebula-flow/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start the specified game directly.

Controls:
  Enter      - Start / play again
  Space      - Cosmic Balance: hold or release the control
               Space Attack: fire at the lowest object
               Stellar Reflex: hit the target
  1-4 q-r a-f z-v
             - Mind Orbit: tap the labelled cell
  Mouse      - Tap objects, cells and targets
  P          - Pause
  Esc        - End the session / leave when it is over
  Ctrl+C     - Quit

Examples:
  nebula play cosmic-balance
  nebula play space-attack --difficulty hard
  nebula play mind-orbit --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id, err := parseGame(args[0])
	if err != nil {
		return err
	}
	game, err := registry.Create(id, registry.Options{
		Difficulty: app.difficulty,
		Profiles:   app.profiles,
	})
	if err != nil {
		return err
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	b, err := openBackends(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer b.Close()

	return tui.Run(game, b.services(logger), runtimeConfig())
}
