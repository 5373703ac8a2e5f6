package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

// SessionEntry is one row of the session history.
type SessionEntry struct {
	ID         string
	Game       session.GameType
	Difficulty config.DifficultyPreset
	Score      int
	Level      int
	Energy     int
	Duration   time.Duration
	EndedAt    time.Time
}

// GameStats contains aggregated history for a game.
type GameStats struct {
	Game       session.GameType
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// RecordSession appends a finished session to the history.
func (s *Store) RecordSession(ctx context.Context, r session.Result) error {
	endedAt := r.EndedAt
	if endedAt.IsZero() {
		endedAt = time.Now()
	}
	m := r.Metrics
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions
		 (id, game_id, difficulty, score, level, rounds, accuracy, focus_time,
		  perfect_rounds, avg_reaction_ms, energy, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.Game), string(r.Difficulty), r.Score,
		m.Level, m.Rounds, m.Accuracy, m.FocusTime,
		m.PerfectRounds, m.AvgReactionMs, r.EnergyEarned,
		r.Duration.Milliseconds(), endedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

const entryColumns = `id, game_id, difficulty, score, level, energy, duration_ms, ended_at`

func scanEntries(rows *sql.Rows) ([]SessionEntry, error) {
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var (
			e          SessionEntry
			game, diff string
			durationMs int64
			endedAt    any
		)
		if err := rows.Scan(&e.ID, &game, &diff, &e.Score, &e.Level, &e.Energy, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Game = session.GameType(game)
		e.Difficulty = config.DifficultyPreset(diff)
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.EndedAt = parseTime(endedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// TopScores retrieves the top N sessions for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(ctx context.Context, game session.GameType, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+`
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY score DESC, ended_at ASC
		 LIMIT ?`,
		string(game), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// RecentSessions retrieves the most recent sessions of every game.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+`
		 FROM sessions
		 ORDER BY ended_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanEntries(rows)
}

// HighScore returns the highest score for the given game.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(ctx context.Context, game session.GameType) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(score) FROM sessions WHERE game_id = ?",
		string(game),
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// AllGameStats retrieves history statistics for every game that has been played.
func (s *Store) AllGameStats(ctx context.Context) (map[session.GameType]GameStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(ended_at)
		 FROM sessions
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[session.GameType]GameStats)
	for rows.Next() {
		var (
			st         GameStats
			game       string
			lastPlayed any
		)
		if err := rows.Scan(&game, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Game = session.GameType(game)
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Game] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearSessions deletes the history of the given game.
func (s *Store) ClearSessions(ctx context.Context, game session.GameType) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE game_id = ?", string(game)); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// ClearHistory deletes the history of every game.
func (s *Store) ClearHistory(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}
