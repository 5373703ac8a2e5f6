package config

import (
	_ "embed"
)

//go:embed defaults/profiles.yaml
var defaultProfilesYAML []byte

// DefaultProfiles returns the built-in tuning of every game.
func DefaultProfiles() Profiles {
	return Profiles{
		CosmicBalance: CosmicBalanceConfig{
			Step:             0.016,
			RoundDuration:    10.0,
			Rounds:           5,
			PerfectThreshold: 0.9,
			Damping:          0.95,
			Restitution:      0.3,
			RoundPause:       0.5,
			Difficulty: PresetTable[CosmicBalanceProfile]{
				Easy:   CosmicBalanceProfile{ZoneSize: 0.15, DriftSpeed: 0.0008, ControlStrength: 0.003},
				Normal: CosmicBalanceProfile{ZoneSize: 0.10, DriftSpeed: 0.0015, ControlStrength: 0.002},
				Hard:   CosmicBalanceProfile{ZoneSize: 0.06, DriftSpeed: 0.0025, ControlStrength: 0.0015},
			},
		},
		SpaceAttack: SpaceAttackConfig{
			MoveTick:      0.05,
			HitScore:      10,
			LevelUpEvery:  100,
			SpeedPerLevel: 0.3,
			SpawnMargin:   50,
			MinSize:       30,
			MaxSize:       60,
			Area:          Area{Width: 390, Height: 844},
			Difficulty: PresetTable[SpaceAttackProfile]{
				Easy:   SpaceAttackProfile{SpawnInterval: 2.0, BaseSpeed: 1.5},
				Normal: SpaceAttackProfile{SpawnInterval: 1.5, BaseSpeed: 2.5},
				Hard:   SpaceAttackProfile{SpawnInterval: 1.0, BaseSpeed: 4.0},
			},
		},
		MindOrbit: MindOrbitConfig{
			Step:           0.05,
			GridSize:       4,
			LeadIn:         0.5,
			HighlightRatio: 0.6,
			PauseRatio:     0.4,
			ResultDelay:    1.5,
			Difficulty: PresetTable[MindOrbitProfile]{
				Easy:   MindOrbitProfile{PatternBase: 2, ShowSpeed: 1.0},
				Normal: MindOrbitProfile{PatternBase: 3, ShowSpeed: 0.8},
				Hard:   MindOrbitProfile{PatternBase: 4, ShowSpeed: 0.6},
			},
		},
		StellarReflex: StellarReflexConfig{
			Step:            0.016,
			Rounds:          10,
			Countdown:       3,
			CountdownStep:   1.0,
			RoundGap:        0.3,
			EdgePadding:     20,
			VerticalPadding: 100,
			LevelEvery:      3,
			Area:            Area{Width: 390, Height: 844},
			Difficulty: PresetTable[StellarReflexProfile]{
				Easy:   StellarReflexProfile{TargetSize: 90, DelayMin: 1.5, DelayMax: 3.0},
				Normal: StellarReflexProfile{TargetSize: 70, DelayMin: 1.0, DelayMax: 2.5},
				Hard:   StellarReflexProfile{TargetSize: 50, DelayMin: 0.6, DelayMax: 2.0},
			},
		},
	}
}

// DefaultYAML returns the embedded default profiles YAML.
func DefaultYAML() []byte {
	return defaultProfilesYAML
}
