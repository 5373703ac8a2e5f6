package progress

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-flow/internal/reward"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

// Store owns the progress record. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	kv     KV
	rec    Record
	now    func() time.Time
	loc    *time.Location
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithNow sets the clock used for streaks and play dates.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the time zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// WithLogger sets the logger for recorded sessions and streak changes.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open loads the record held by kv.
func Open(ctx context.Context, kv KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:     kv,
		now:    time.Now,
		loc:    time.Local,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	rec, err := decode(ctx, kv)
	if err != nil {
		return nil, err
	}
	s.rec = rec
	return s, nil
}

// Record returns a copy of the current record.
func (s *Store) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec
}

// RecordSession folds a finished session into the record and persists it.
// The in-memory record is left untouched when persisting fails.
func (s *Store) RecordSession(ctx context.Context, r session.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.rec
	bucket := next.stats(r.Game)
	if bucket == nil {
		return fmt.Errorf("progress: record session: %w", session.ErrUnknownGame)
	}

	bucket.GamesPlayed++
	bucket.TotalScore += r.Score
	bucket.HighScore = max(bucket.HighScore, r.Score)
	bucket.HighestLevel = max(bucket.HighestLevel, r.Metrics.Level)

	switch r.Game {
	case session.StellarReflex:
		applyReaction(&next.StellarReflex, r.Metrics.AvgReactionMs)
	case session.CosmicBalance:
		next.CosmicBalance.BestAccuracy = max(next.CosmicBalance.BestAccuracy, r.Metrics.Accuracy)
		next.CosmicBalance.TotalFocusTime += r.Metrics.FocusTime
	}

	energy := reward.ForResult(r)
	if energy != r.EnergyEarned {
		s.logger.Warn("energy mismatch", "game", r.Game, "reported", r.EnergyEarned, "computed", energy)
	}
	next.EnergyFragments += energy
	next.TotalEnergyEarned += energy

	next.TotalGamesPlayed++
	next.TotalPlayTime += r.Duration.Seconds()
	next.PerfectRounds += r.Metrics.PerfectRounds
	next.FavoriteGame = next.favorite()

	prevStreak := next.CurrentStreak
	advanceStreak(&next, s.now(), s.loc)

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.rec = next

	s.logger.Info("session recorded",
		"game", r.Game, "score", r.Score, "energy", energy,
		"fragments", next.EnergyFragments)
	if next.CurrentStreak != prevStreak {
		s.logger.Info("streak changed", "from", prevStreak, "to", next.CurrentStreak, "best", next.BestStreak)
	}
	return nil
}

func applyReaction(st *ReflexStats, avg int) {
	if avg <= 0 {
		return
	}
	st.BestReactionMs = min(st.BestReactionMs, avg)
	if st.AvgReactionMs == 0 {
		st.AvgReactionMs = avg
	} else {
		st.AvgReactionMs = (st.AvgReactionMs + avg) / 2
	}
}

// Reset writes every key back to its default.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := NewRecord()
	if err := s.persist(ctx, fresh); err != nil {
		return err
	}
	s.rec = fresh
	s.logger.Info("progress reset")
	return nil
}

// AverageFocusLevel is the mean score across all games scaled to 0..100.
func (s *Store) AverageFocusLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec.TotalGamesPlayed == 0 {
		return 0
	}
	return min(max(s.rec.TotalScore()/s.rec.TotalGamesPlayed/10, 0), 100)
}

// DaysActive counts calendar days from the first play to now, inclusive.
func (s *Store) DaysActive(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec.FirstPlayed.IsZero() {
		return 0
	}
	return max(1, calendarDays(s.rec.FirstPlayed, now, s.loc)+1)
}

func (s *Store) persist(ctx context.Context, r Record) error {
	values := encode(r)
	if b, ok := s.kv.(BatchKV); ok {
		if err := b.SetAll(ctx, values); err != nil {
			return fmt.Errorf("progress: persist: %w", err)
		}
		return nil
	}
	for _, k := range Keys() {
		if err := s.kv.Set(ctx, k, values[k]); err != nil {
			return fmt.Errorf("progress: persist %s: %w", k, err)
		}
	}
	return nil
}
