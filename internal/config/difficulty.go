package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts "", "easy", "normal" or "hard". Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// timingScale returns the percentage applied to the pause and the interval.
func timingScale(preset DifficultyPreset) (pausePct, intervalPct int) {
	switch preset {
	case DifficultyEasy:
		return 150, 125
	case DifficultyHard:
		return 50, 60
	default:
		return 100, 100
	}
}

// ApplyScramblePreset scales the timings of cfg for the preset.
// Easy gives more time to memorize and follow the tiles, hard less.
func ApplyScramblePreset(cfg *ScrambleConfig, preset DifficultyPreset) {
	pausePct, intervalPct := timingScale(preset)
	cfg.Timing.PausePerTileMS = cfg.Timing.PausePerTileMS * pausePct / 100
	cfg.Timing.ScrambleIntervalMS = cfg.Timing.ScrambleIntervalMS * intervalPct / 100
	if cfg.Timing.ScrambleIntervalMS < 1 {
		cfg.Timing.ScrambleIntervalMS = 1
	}
}
