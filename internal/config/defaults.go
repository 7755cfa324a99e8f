package config

import (
	_ "embed"
)

//go:embed defaults/scramble.yaml
var defaultScrambleYAML []byte

// DefaultScrambleConfig returns the built-in configuration.
// It matches defaults/scramble.yaml and is used when the embedded file cannot be parsed.
func DefaultScrambleConfig() ScrambleConfig {
	return ScrambleConfig{
		Tiles: TilesConfig{
			Min:    3,
			Max:    7,
			Width:  7,
			Height: 3,
		},
		Timing: TimingConfig{
			PausePerTileMS:     1000,
			ScrambleIntervalMS: 2000,
		},
		Messages: MessagesConfig{
			Prompt:       "How many tiles? ({min}-{max}) then press Enter",
			InvalidCount: "Please enter a number between {min} and {max}.",
			Win:          "Excellent memory!",
			Loss:         "Wrong order!",
		},
		LossReveal: LossRevealAll,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultScrambleYAML
}
