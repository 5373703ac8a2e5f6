// nebula is a terminal host for the Nebula Flow mini-games.
//
// Usage:
//
//	nebula list              - List available games
//	nebula play <game>       - Play a game
//	nebula menu              - Pick games interactively
//	nebula stats             - Show lifetime progress
//	nebula scores <game>     - Show the best sessions of a game
//	nebula reset             - Reset progress and history
//	nebula serve             - Start SSH server for remote play
//	nebula sim <game>        - Run a headless session with a scripted player
//
// Global flags:
//
//	--config <path>      - Settings file (default: $XDG_CONFIG_HOME/nebula/config.toml)
//	--profiles <path>    - Game tuning YAML
//	--fps <rate>         - Renderer frame rate cap (game steps keep their fixed interval)
//	--seed <value>       - RNG seed for reproducible sessions
//	--db <path>          - Progress database
//	--no-db              - Keep progress in memory only
//	--difficulty <name>  - easy, normal or hard
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/nebula-flow/internal/games/cosmicbalance"
	_ "github.com/vovakirdan/nebula-flow/internal/games/mindorbit"
	_ "github.com/vovakirdan/nebula-flow/internal/games/spaceattack"
	_ "github.com/vovakirdan/nebula-flow/internal/games/stellarreflex"

	"github.com/vovakirdan/nebula-flow/internal/config"
)

var (
	// Global flags
	flagConfigPath string
	flagProfiles   string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagNoDB       bool
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nebula",
	Short: "Nebula Flow - focus mini-games in your terminal",
	Long: `Nebula Flow is a collection of four short focus games that share one
progression: every session earns energy fragments, keeps your daily
streak alive and feeds your lifetime statistics.

Games:
  cosmic-balance  - keep the orb inside the target zone
  space-attack    - destroy falling objects before they escape
  mind-orbit      - repeat the pattern of lit cells
  stellar-reflex  - hit the target as soon as it appears

Examples:
  nebula menu
  nebula play stellar-reflex --difficulty hard
  nebula stats
  nebula serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigPath, "config", config.DefaultConfigPath(), "Path to settings TOML")
	pf.StringVar(&flagProfiles, "profiles", "", "Path to custom game tuning YAML")
	pf.IntVar(&flagFPS, "fps", 60, "Renderer frame rate cap; game steps keep their fixed interval")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	pf.StringVar(&flagDBPath, "db", "", "Path to progress database (default from settings)")
	pf.BoolVar(&flagNoDB, "no-db", false, "Keep progress in memory only")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
