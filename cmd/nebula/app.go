package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/platform/tui"
	"github.com/vovakirdan/nebula-flow/internal/progress"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/session"
	"github.com/vovakirdan/nebula-flow/internal/storage"
)

// app holds what every command needs after flags and settings are resolved.
var app struct {
	settings   config.Settings
	difficulty config.DifficultyPreset
	profiles   config.Profiles
	logger     *log.Logger
}

// setup resolves settings: defaults, then config.toml, then NEBULA_* variables,
// then explicitly set flags.
func setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(flagConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		settings.DBPath = flagDBPath
	}
	if flags.Changed("fps") {
		settings.TickRate = flagFPS
	}
	if flags.Changed("difficulty") {
		settings.Difficulty = flagDifficulty
	}
	if flags.Changed("profiles") {
		settings.ProfilesPath = flagProfiles
	}
	if flags.Changed("log-level") {
		settings.LogLevel = flagLogLevel
	}
	if settings.TickRate <= 0 {
		return fmt.Errorf("fps must be positive, got %d", settings.TickRate)
	}

	app.difficulty, err = config.ParsePreset(settings.Difficulty)
	if err != nil {
		return err
	}
	app.profiles, err = config.LoadProfiles(settings.ProfilesPath)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(strings.ToLower(settings.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	app.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "nebula",
		Level:           level,
	})
	app.settings = settings
	return nil
}

// backends bundles the stores a command opened.
type backends struct {
	db       *storage.Store // nil with --no-db
	progress *progress.Store
}

func (b backends) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// recorder forwards results to the history first and then to progress.
func (b backends) recorder() session.Recorder {
	if b.db == nil {
		return b.progress
	}
	return session.Recorders{b.db, b.progress}
}

// openBackends opens the database, or an in-memory store with --no-db.
func openBackends(ctx context.Context, logger *log.Logger) (backends, error) {
	var (
		b  backends
		kv progress.KV
	)
	if flagNoDB {
		kv = progress.NewMemoryKV()
	} else {
		db, err := storage.Open(app.settings.DBPath)
		if err != nil {
			return backends{}, err
		}
		b.db, kv = db, db
	}

	ps, err := progress.Open(ctx, kv, progress.WithLogger(logger.WithPrefix("progress")))
	if err != nil {
		b.Close()
		return backends{}, err
	}
	b.progress = ps
	return b, nil
}

// services builds the host services over b.
func (b backends) services(logger *log.Logger) tui.Services {
	svc := tui.Services{
		Progress: b.progress,
		Recorder: b.recorder(),
		Options: registry.Options{
			Difficulty: app.difficulty,
			Profiles:   app.profiles,
		},
		Logger: logger,
	}
	if b.db != nil {
		svc.History = b.db
	}
	return svc
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runtimeConfig() core.RuntimeConfig {
	w, h := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: app.settings.TickRate,
		Seed:     flagSeed,
	}
}

// tuiLogger writes to a file next to the database so log lines do not tear
// the full-screen interface.
func tuiLogger() (*log.Logger, func()) {
	path := filepath.Join(config.XDGDataHome(), "nebula", "nebula.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "nebula",
		Level:           app.logger.GetLevel(),
	})
	return logger, func() { f.Close() }
}

func parseGame(id string) (session.GameType, error) {
	g, err := session.ParseGameType(id)
	if err != nil || !registry.Exists(g) {
		return "", fmt.Errorf("unknown game %q (run 'nebula list' to see available games)", id)
	}
	return g, nil
}
