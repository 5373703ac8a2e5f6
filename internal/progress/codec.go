package progress

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Keys of the scalar fields. Per-game keys are built from gamePrefixes.
const (
	keyEnergyFragments   = "energyFragments"
	keyTotalEnergyEarned = "totalEnergyEarned"
	keyCurrentStreak     = "currentStreak"
	keyBestStreak        = "bestStreak"
	keyTotalGamesPlayed  = "totalGamesPlayed"
	keyTotalPlayTime     = "totalPlayTime"
	keyPerfectRounds     = "perfectRounds"
	keyFavoriteGame      = "favoriteGame"
	keyFirstPlayedDate   = "firstPlayedDate"
	keyLastPlayedDate    = "lastPlayedDate"
)

type intField struct {
	key string
	ptr *int
	def int
}

func statsFields(prefix string, s *GameStats) []intField {
	return []intField{
		{prefix + "HighScore", &s.HighScore, 0},
		{prefix + "GamesPlayed", &s.GamesPlayed, 0},
		{prefix + "TotalScore", &s.TotalScore, 0},
		{prefix + "HighestLevel", &s.HighestLevel, 0},
	}
}

// intFields lists every integer field of r with its key and default.
func intFields(r *Record) []intField {
	fields := []intField{
		{keyEnergyFragments, &r.EnergyFragments, 0},
		{keyTotalEnergyEarned, &r.TotalEnergyEarned, 0},
		{keyCurrentStreak, &r.CurrentStreak, 0},
		{keyBestStreak, &r.BestStreak, 0},
		{keyTotalGamesPlayed, &r.TotalGamesPlayed, 0},
		{keyPerfectRounds, &r.PerfectRounds, 0},
	}
	fields = append(fields, statsFields("spaceAttack", &r.SpaceAttack)...)
	fields = append(fields, statsFields("mindOrbit", &r.MindOrbit)...)
	fields = append(fields, statsFields("stellarReflex", &r.StellarReflex.GameStats)...)
	fields = append(fields,
		intField{"stellarReflexBestReaction", &r.StellarReflex.BestReactionMs, UnsetReaction},
		intField{"stellarReflexAvgReaction", &r.StellarReflex.AvgReactionMs, 0},
	)
	fields = append(fields, statsFields("cosmicBalance", &r.CosmicBalance.GameStats)...)
	fields = append(fields,
		intField{"cosmicBalanceBestAccuracy", &r.CosmicBalance.BestAccuracy, 0},
		intField{"cosmicBalanceTotalFocusTime", &r.CosmicBalance.TotalFocusTime, 0},
	)
	return fields
}

// Keys returns every key the store writes.
func Keys() []string {
	var r Record
	var keys []string
	for _, f := range intFields(&r) {
		keys = append(keys, f.key)
	}
	return append(keys, keyTotalPlayTime, keyFavoriteGame, keyFirstPlayedDate, keyLastPlayedDate)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// encode serializes every field: integers in base 10, dates as RFC 3339.
// An unset date is written as an empty string.
func encode(r Record) map[string]string {
	out := make(map[string]string)
	for _, f := range intFields(&r) {
		out[f.key] = strconv.Itoa(*f.ptr)
	}
	out[keyTotalPlayTime] = strconv.FormatFloat(r.TotalPlayTime, 'f', -1, 64)
	out[keyFavoriteGame] = r.FavoriteGame
	out[keyFirstPlayedDate] = formatDate(r.FirstPlayed)
	out[keyLastPlayedDate] = formatDate(r.LastPlayed)
	return out
}

// decode reads a record. Absent keys take the field default; stored values
// are used as they are.
func decode(ctx context.Context, kv KV) (Record, error) {
	r := NewRecord()

	for _, f := range intFields(&r) {
		v, ok, err := kv.Get(ctx, f.key)
		if err != nil {
			return Record{}, fmt.Errorf("progress: read %s: %w", f.key, err)
		}
		if !ok {
			*f.ptr = f.def
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Record{}, fmt.Errorf("progress: parse %s: %w", f.key, err)
		}
		*f.ptr = n
	}

	v, ok, err := kv.Get(ctx, keyTotalPlayTime)
	if err != nil {
		return Record{}, fmt.Errorf("progress: read %s: %w", keyTotalPlayTime, err)
	}
	if ok && v != "" {
		if r.TotalPlayTime, err = strconv.ParseFloat(v, 64); err != nil {
			return Record{}, fmt.Errorf("progress: parse %s: %w", keyTotalPlayTime, err)
		}
	}

	v, ok, err = kv.Get(ctx, keyFavoriteGame)
	if err != nil {
		return Record{}, fmt.Errorf("progress: read %s: %w", keyFavoriteGame, err)
	}
	if ok {
		r.FavoriteGame = v
	}

	if r.FirstPlayed, err = readDate(ctx, kv, keyFirstPlayedDate); err != nil {
		return Record{}, err
	}
	if r.LastPlayed, err = readDate(ctx, kv, keyLastPlayedDate); err != nil {
		return Record{}, err
	}
	return r, nil
}

func readDate(ctx context.Context, kv KV, key string) (time.Time, error) {
	v, ok, err := kv.Get(ctx, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("progress: read %s: %w", key, err)
	}
	if !ok || v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("progress: parse %s: %w", key, err)
	}
	return t, nil
}
