// Package config provides YAML-based difficulty profiles and session tuning,
// plus TOML/environment application settings for the Nebula Flow engine.
package config

import "github.com/vovakirdan/nebula-flow/internal/core"

// Profiles contains the tuning of every game, including its difficulty table.
type Profiles struct {
	CosmicBalance CosmicBalanceConfig `yaml:"cosmic_balance"`
	SpaceAttack   SpaceAttackConfig   `yaml:"space_attack"`
	MindOrbit     MindOrbitConfig     `yaml:"mind_orbit"`
	StellarReflex StellarReflexConfig `yaml:"stellar_reflex"`
}

// Area is a play area size in play-area units.
type Area struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size converts the area to a core.Size.
func (a Area) Size() core.Size {
	return core.Size{W: a.Width, H: a.Height}
}

// CosmicBalanceConfig defines the physics-balance session.
type CosmicBalanceConfig struct {
	Step             float64                           `yaml:"step"`              // fixed tick, seconds
	RoundDuration    float64                           `yaml:"round_duration"`    // seconds per round
	Rounds           int                               `yaml:"rounds"`            // rounds per session
	PerfectThreshold float64                           `yaml:"perfect_threshold"` // fraction of the round in zone
	Damping          float64                           `yaml:"damping"`           // velocity factor per tick
	Restitution      float64                           `yaml:"restitution"`       // bounce factor at the edges
	RoundPause       float64                           `yaml:"round_pause"`       // seconds between rounds
	Difficulty       PresetTable[CosmicBalanceProfile] `yaml:"difficulty"`
}

// CosmicBalanceProfile holds the difficulty-dependent Cosmic Balance values.
type CosmicBalanceProfile struct {
	ZoneSize        float64 `yaml:"zone_size"`
	DriftSpeed      float64 `yaml:"drift_speed"`
	ControlStrength float64 `yaml:"control_strength"`
}

// SpaceAttackConfig defines the spawn/intercept session.
type SpaceAttackConfig struct {
	MoveTick      float64                         `yaml:"move_tick"`       // seconds per movement step
	HitScore      int                             `yaml:"hit_score"`       // points per destroyed object
	LevelUpEvery  int                             `yaml:"level_up_every"`  // cumulative score per level
	SpeedPerLevel float64                         `yaml:"speed_per_level"` // random speed bonus per level
	SpawnMargin   float64                         `yaml:"spawn_margin"`    // horizontal margin and off-screen offset
	MinSize       float64                         `yaml:"min_size"`
	MaxSize       float64                         `yaml:"max_size"`
	Area          Area                            `yaml:"area"`
	Difficulty    PresetTable[SpaceAttackProfile] `yaml:"difficulty"`
}

// SpaceAttackProfile holds the difficulty-dependent Space Attack values.
type SpaceAttackProfile struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds at level 1
	BaseSpeed     float64 `yaml:"base_speed"`     // units per movement step
}

// MindOrbitConfig defines the pattern memory session.
type MindOrbitConfig struct {
	Step           float64                       `yaml:"step"`
	GridSize       int                           `yaml:"grid_size"`       // cells per side
	LeadIn         float64                       `yaml:"lead_in"`         // seconds before the first pulse
	HighlightRatio float64                       `yaml:"highlight_ratio"` // share of show speed lit
	PauseRatio     float64                       `yaml:"pause_ratio"`     // share of show speed dark
	ResultDelay    float64                       `yaml:"result_delay"`    // seconds Correct/Wrong is shown
	Difficulty     PresetTable[MindOrbitProfile] `yaml:"difficulty"`
}

// MindOrbitProfile holds the difficulty-dependent Mind Orbit values.
type MindOrbitProfile struct {
	PatternBase int     `yaml:"pattern_base"`
	ShowSpeed   float64 `yaml:"show_speed"`
}

// StellarReflexConfig defines the reaction-time session.
type StellarReflexConfig struct {
	Step            float64                           `yaml:"step"`
	Rounds          int                               `yaml:"rounds"`
	Countdown       int                               `yaml:"countdown"`        // countdown start value
	CountdownStep   float64                           `yaml:"countdown_step"`   // seconds per countdown value
	RoundGap        float64                           `yaml:"round_gap"`        // seconds after a hit
	EdgePadding     float64                           `yaml:"edge_padding"`     // added to target size
	VerticalPadding float64                           `yaml:"vertical_padding"` // extra top/bottom padding
	LevelEvery      int                               `yaml:"level_every"`      // rounds per level
	Area            Area                              `yaml:"area"`
	Difficulty      PresetTable[StellarReflexProfile] `yaml:"difficulty"`
}

// StellarReflexProfile holds the difficulty-dependent Stellar Reflex values.
type StellarReflexProfile struct {
	TargetSize float64 `yaml:"target_size"`
	DelayMin   float64 `yaml:"delay_min"`
	DelayMax   float64 `yaml:"delay_max"`
}
