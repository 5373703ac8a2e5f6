package reward

import (
	"testing"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

func TestCosmicBalance(t *testing.T) {
	tests := []struct {
		score, perfect int
		lvl            config.DifficultyPreset
		want           int
	}{
		{0, 0, config.DifficultyEasy, 0},
		{19, 0, config.DifficultyEasy, 0},
		{2500, 5, config.DifficultyNormal, (125 + 50) * 2},
		{400, 2, config.DifficultyHard, (20 + 20) * 3},
	}
	for _, tt := range tests {
		if got := CosmicBalance(tt.score, tt.perfect, tt.lvl); got != tt.want {
			t.Errorf("CosmicBalance(%d, %d, %s) = %d, want %d", tt.score, tt.perfect, tt.lvl, got, tt.want)
		}
	}
}

func TestLevelAwards(t *testing.T) {
	if got := SpaceAttackLevelUp(2, config.DifficultyNormal); got != 20 {
		t.Errorf("SpaceAttackLevelUp(2, normal) = %d, want 20", got)
	}
	// Levels 2 and 3 on hard: 2*5*3 + 3*5*3.
	if got := SpaceAttack(3, config.DifficultyHard); got != 75 {
		t.Errorf("SpaceAttack(3, hard) = %d, want 75", got)
	}
	if got := SpaceAttack(1, config.DifficultyHard); got != 0 {
		t.Errorf("SpaceAttack(1, hard) = %d, want 0", got)
	}
	if got := MindOrbitRound(2, config.DifficultyEasy); got != 6 {
		t.Errorf("MindOrbitRound(2, easy) = %d, want 6", got)
	}
	if got := MindOrbit(4, config.DifficultyNormal); got != (2+3+4)*3*2 {
		t.Errorf("MindOrbit(4, normal) = %d, want 54", got)
	}
}

func TestStellarReflex(t *testing.T) {
	if got := StellarReflex(735, 4, config.DifficultyNormal); got != (73+20)*2 {
		t.Errorf("StellarReflex = %d, want 186", got)
	}
}

func TestForResult(t *testing.T) {
	tests := []struct {
		name string
		r    session.Result
		want int
	}{
		{
			name: "cosmic balance",
			r:    session.Result{Game: session.CosmicBalance, Difficulty: config.DifficultyEasy, Score: 100, Metrics: session.Metrics{PerfectRounds: 1}},
			want: 15,
		},
		{
			name: "space attack",
			r:    session.Result{Game: session.SpaceAttack, Difficulty: config.DifficultyNormal, Score: 200, Metrics: session.Metrics{Level: 3}},
			want: 50,
		},
		{
			name: "mind orbit",
			r:    session.Result{Game: session.MindOrbit, Difficulty: config.DifficultyHard, Metrics: session.Metrics{Level: 2}},
			want: 18,
		},
		{
			name: "stellar reflex",
			r:    session.Result{Game: session.StellarReflex, Difficulty: config.DifficultyEasy, Score: 500, Metrics: session.Metrics{Level: 4}},
			want: 70,
		},
		{
			name: "invalid difficulty",
			r:    session.Result{Game: session.StellarReflex, Difficulty: "extreme", Score: 500},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForResult(tt.r); got != tt.want {
				t.Errorf("ForResult() = %d, want %d", got, tt.want)
			}
		})
	}
}
