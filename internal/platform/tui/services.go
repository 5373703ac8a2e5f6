package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-flow/internal/progress"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/session"
	"github.com/vovakirdan/nebula-flow/internal/storage"
)

// History is the session history shown on the statistics screen.
type History interface {
	TopScores(ctx context.Context, game session.GameType, limit int) ([]storage.SessionEntry, error)
}

// Services are the backends shared by every screen of a host. Any of the
// stores may be nil; the screens degrade to what is available.
type Services struct {
	Progress *progress.Store
	History  History
	Recorder session.Recorder
	Options  registry.Options
	Logger   *log.Logger
	Now      func() time.Time
}

func (s Services) withDefaults() Services {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.Options.Profiles.CosmicBalance.RoundDuration == 0 {
		s.Options.Profiles = registry.DefaultOptions().Profiles
	}
	if s.Options.Difficulty == "" {
		s.Options.Difficulty = registry.DefaultOptions().Difficulty
	}
	return s
}
