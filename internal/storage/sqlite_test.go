package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/progress"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveResult(t *testing.T, store *Store, game session.GameType, score int, endedAt time.Time) {
	t.Helper()
	r := session.NewResult(game, config.DifficultyNormal)
	r.Score = score
	r.Metrics.Level = 2
	r.EnergyEarned = 20
	r.Duration = 1500 * time.Millisecond
	r.EndedAt = endedAt
	if err := store.RecordSession(context.Background(), r); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestKVGetSet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "energyFragments"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}
	if err := store.Set(ctx, "energyFragments", "10"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(ctx, "energyFragments", "25"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	v, ok, err := store.Get(ctx, "energyFragments")
	if err != nil || !ok || v != "25" {
		t.Errorf("Get() = %q, %v, %v; want 25", v, ok, err)
	}
}

func TestKVSetAll(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	values := map[string]string{"a": "1", "b": "", "c": "three"}
	if err := store.SetAll(ctx, values); err != nil {
		t.Fatalf("SetAll() failed: %v", err)
	}
	for k, want := range values {
		got, ok, err := store.Get(ctx, k)
		if err != nil || !ok || got != want {
			t.Errorf("Get(%s) = %q, %v, %v; want %q", k, got, ok, err, want)
		}
	}
}

func TestProgressStoreOverSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progress.db")
	ctx := context.Background()
	now := func() time.Time { return time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC) }

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	ps, err := progress.Open(ctx, store, progress.WithNow(now))
	if err != nil {
		t.Fatal(err)
	}
	r := session.NewResult(session.StellarReflex, config.DifficultyHard)
	r.Score = 640
	r.Metrics = session.Metrics{AvgReactionMs: 280, Level: 4, Rounds: 10}
	if err := ps.RecordSession(ctx, r); err != nil {
		t.Fatal(err)
	}
	want := ps.Record()
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	ps2, err := progress.Open(ctx, reopened)
	if err != nil {
		t.Fatal(err)
	}
	got := ps2.Record()
	if got.StellarReflex != want.StellarReflex || got.EnergyFragments != want.EnergyFragments {
		t.Errorf("reloaded %+v, want %+v", got, want)
	}
	// (640/10 + 4*5) * 3
	if got.EnergyFragments != 252 {
		t.Errorf("energy = %d, want 252", got.EnergyFragments)
	}
	if !got.LastPlayed.Equal(now()) {
		t.Errorf("last played = %v, want %v", got.LastPlayed, now())
	}
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, score := range []int{100, 50, 200} {
		saveResult(t, store, session.SpaceAttack, score, base.Add(time.Duration(i)*time.Minute))
	}
	saveResult(t, store, session.MindOrbit, 500, base)

	scores, err := store.TopScores(ctx, session.SpaceAttack, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	top := scores[0]
	if top.Game != session.SpaceAttack || top.Difficulty != config.DifficultyNormal {
		t.Errorf("entry = %+v", top)
	}
	if top.Level != 2 || top.Energy != 20 || top.Duration != 1500*time.Millisecond {
		t.Errorf("entry metrics = %+v", top)
	}
	if !top.EndedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("ended at = %v", top.EndedAt)
	}

	limited, err := store.TopScores(ctx, session.SpaceAttack, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	high, err := store.HighScore(ctx, session.CosmicBalance)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for i, score := range []int{100, 300, 200} {
		saveResult(t, store, session.CosmicBalance, score, base.Add(time.Duration(i)*time.Hour))
	}
	if high, _ = store.HighScore(ctx, session.CosmicBalance); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	stats, err := store.AllGameStats(ctx)
	if err != nil {
		t.Fatalf("AllGameStats() failed: %v", err)
	}
	cb, ok := stats[session.CosmicBalance]
	if !ok || len(stats) != 1 {
		t.Fatalf("stats = %v", stats)
	}
	if cb.GamesCount != 3 || cb.HighScore != 300 || cb.TotalScore != 600 || cb.AvgScore != 200 {
		t.Errorf("stats = %+v", cb)
	}
	if !cb.LastPlayed.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("last played = %v", cb.LastPlayed)
	}
}

func TestRecentSessionsAndClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	saveResult(t, store, session.SpaceAttack, 10, base)
	saveResult(t, store, session.MindOrbit, 20, base.Add(time.Minute))
	saveResult(t, store, session.SpaceAttack, 30, base.Add(2*time.Minute))

	recent, err := store.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 30 || recent[1].Score != 20 {
		t.Errorf("recent = %v", recent)
	}

	if err := store.ClearSessions(ctx, session.SpaceAttack); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if sa, _ := store.TopScores(ctx, session.SpaceAttack, 10); len(sa) != 0 {
		t.Errorf("Expected 0 Space Attack sessions after clear, got %d", len(sa))
	}
	if mo, _ := store.TopScores(ctx, session.MindOrbit, 10); len(mo) != 1 {
		t.Errorf("Mind Orbit history should not be affected")
	}

	if err := store.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}
	if all, _ := store.RecentSessions(ctx, 10); len(all) != 0 {
		t.Errorf("Expected empty history, got %d", len(all))
	}
}

func TestDuplicateSessionRejected(t *testing.T) {
	store := openTestStore(t)
	r := session.NewResult(session.MindOrbit, config.DifficultyEasy)
	if err := store.RecordSession(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordSession(context.Background(), r); err == nil {
		t.Error("recording the same session twice should fail")
	}
}
