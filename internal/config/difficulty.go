package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a difficulty name is not one of the presets.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists every difficulty in increasing order of challenge.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset parses a difficulty name (case-insensitive). Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DifficultyNormal, nil
	case string(DifficultyEasy):
		return DifficultyEasy, nil
	case string(DifficultyNormal):
		return DifficultyNormal, nil
	case string(DifficultyHard):
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// Valid reports whether p is one of the three presets.
func (p DifficultyPreset) Valid() bool {
	return p == DifficultyEasy || p == DifficultyNormal || p == DifficultyHard
}

// Multiplier returns the reward multiplier for the preset (1, 2, 3).
func (p DifficultyPreset) Multiplier() int {
	switch p {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 3
	}
	panic(fmt.Sprintf("config: invalid difficulty preset %q", string(p)))
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	}
	return string(p)
}

// PresetTable holds one value per difficulty preset.
type PresetTable[T any] struct {
	Easy   T `yaml:"easy"`
	Normal T `yaml:"normal"`
	Hard   T `yaml:"hard"`
}

// For returns the entry for the given preset.
// Passing a value outside the closed enum is a programming error.
func (t PresetTable[T]) For(p DifficultyPreset) T {
	switch p {
	case DifficultyEasy:
		return t.Easy
	case DifficultyNormal:
		return t.Normal
	case DifficultyHard:
		return t.Hard
	}
	panic(fmt.Sprintf("config: invalid difficulty preset %q", string(p)))
}
