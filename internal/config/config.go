// Package config provides YAML-based configuration loading and difficulty
// presets for the scramble game.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LossReveal controls which tiles are marked incorrect when a round is lost.
type LossReveal string

const (
	LossRevealAll       LossReveal = "all"       // every tile is revealed and marked
	LossRevealOffending LossReveal = "offending" // every tile is revealed, only the clicked one is marked
)

// ScrambleConfig contains all configuration for the scramble game.
type ScrambleConfig struct {
	Tiles      TilesConfig    `yaml:"tiles"`
	Timing     TimingConfig   `yaml:"timing"`
	Messages   MessagesConfig `yaml:"messages"`
	LossReveal LossReveal     `yaml:"loss_reveal"`
}

// TilesConfig bounds the round size and sets the tile footprint in cells.
type TilesConfig struct {
	Min    int `yaml:"min"`
	Max    int `yaml:"max"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the memorization pause and the scramble cadence.
type TimingConfig struct {
	PausePerTileMS     int `yaml:"pause_per_tile_ms"`    // pause before scrambling, per tile
	ScrambleIntervalMS int `yaml:"scramble_interval_ms"` // time between two scramble steps
}

// MessagesConfig is the localizable string table shown in the message area.
// InvalidCount may reference {min} and {max}; Win and Loss may reference {n}.
type MessagesConfig struct {
	Prompt       string `yaml:"prompt"`
	InvalidCount string `yaml:"invalid_count"`
	Win          string `yaml:"win"`
	Loss         string `yaml:"loss"`
}

// PausePerTile returns the memorization pause for one tile.
func (t TimingConfig) PausePerTile() time.Duration {
	return time.Duration(t.PausePerTileMS) * time.Millisecond
}

// ScrambleInterval returns the delay between scramble steps.
func (t TimingConfig) ScrambleInterval() time.Duration {
	return time.Duration(t.ScrambleIntervalMS) * time.Millisecond
}

// InvalidCountText renders the validation message for the given bounds.
func (m MessagesConfig) InvalidCountText(min, max int) string {
	return fillBounds(m.InvalidCount, min, max)
}

// PromptText renders the count field hint for the given bounds.
func (m MessagesConfig) PromptText(min, max int) string {
	return fillBounds(m.Prompt, min, max)
}

func fillBounds(tmpl string, min, max int) string {
	return strings.NewReplacer(
		"{min}", strconv.Itoa(min),
		"{max}", strconv.Itoa(max),
	).Replace(tmpl)
}

// WinText renders the win message for a round of n tiles.
func (m MessagesConfig) WinText(n int) string {
	return strings.ReplaceAll(m.Win, "{n}", strconv.Itoa(n))
}

// LossText renders the loss message for a round of n tiles.
func (m MessagesConfig) LossText(n int) string {
	return strings.ReplaceAll(m.Loss, "{n}", strconv.Itoa(n))
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a game.
func (c ScrambleConfig) Validate() error {
	var problems []string

	if c.Tiles.Min < 1 {
		problems = append(problems, "tiles.min must be at least 1")
	}
	if c.Tiles.Max < c.Tiles.Min {
		problems = append(problems, "tiles.max must not be below tiles.min")
	}
	if c.Tiles.Max > 9 {
		problems = append(problems, "tiles.max must not exceed 9")
	}
	if c.Tiles.Width < 3 || c.Tiles.Height < 1 {
		problems = append(problems, "tiles.width must be at least 3 and tiles.height at least 1")
	}
	if c.Timing.PausePerTileMS < 0 {
		problems = append(problems, "timing.pause_per_tile_ms must not be negative")
	}
	if c.Timing.ScrambleIntervalMS <= 0 {
		problems = append(problems, "timing.scramble_interval_ms must be positive")
	}
	switch c.LossReveal {
	case LossRevealAll, LossRevealOffending:
	default:
		problems = append(problems, fmt.Sprintf("loss_reveal %q must be %q or %q", c.LossReveal, LossRevealAll, LossRevealOffending))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
