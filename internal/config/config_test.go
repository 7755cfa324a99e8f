package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// implicit config locations are absent.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg ScrambleConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultScrambleConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadScrambleFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadScramble("")
	require.NoError(t, err)
	assert.Equal(t, DefaultScrambleConfig(), cfg)
	assert.Equal(t, time.Second, cfg.Timing.PausePerTile())
	assert.Equal(t, 2*time.Second, cfg.Timing.ScrambleInterval())
}

func TestLoadScrambleCustomPathPartialOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timing:\n  scramble_interval_ms: 500\nmessages:\n  win: \"Bravo!\"\n"), 0o600))

	cfg, err := LoadScramble(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Timing.ScrambleIntervalMS)
	assert.Equal(t, 1000, cfg.Timing.PausePerTileMS, "unset keys keep their default")
	assert.Equal(t, "Bravo!", cfg.Messages.Win)
	assert.Equal(t, "Wrong order!", cfg.Messages.Loss)
}

func TestLoadScrambleCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := LoadScramble(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tiles:\n  min: 5\n  max: 2\n"), 0o600))
	_, err = LoadScramble(bad)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadScrambleUserDirectory(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".scramble", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scramble.yaml"), []byte("tiles:\n  max: 5\n"), 0o600))

	cfg, err := LoadScramble("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Tiles.Max)
}

func TestLoadScrambleSkipsInvalidImplicitFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "scramble.yaml"), []byte("loss_reveal: sometimes\n"), 0o600))

	cfg, err := LoadScramble("")
	require.NoError(t, err)
	assert.Equal(t, LossRevealAll, cfg.LossReveal)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScrambleConfig)
		ok     bool
	}{
		{"defaults", func(*ScrambleConfig) {}, true},
		{"single tile rounds", func(c *ScrambleConfig) { c.Tiles.Min, c.Tiles.Max = 1, 1 }, true},
		{"min zero", func(c *ScrambleConfig) { c.Tiles.Min = 0 }, false},
		{"max below min", func(c *ScrambleConfig) { c.Tiles.Max = 2 }, false},
		{"two digit values", func(c *ScrambleConfig) { c.Tiles.Max = 10 }, false},
		{"narrow tiles", func(c *ScrambleConfig) { c.Tiles.Width = 2 }, false},
		{"zero interval", func(c *ScrambleConfig) { c.Timing.ScrambleIntervalMS = 0 }, false},
		{"no pause", func(c *ScrambleConfig) { c.Timing.PausePerTileMS = 0 }, true},
		{"unknown reveal", func(c *ScrambleConfig) { c.LossReveal = "none" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultScrambleConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	m := DefaultScrambleConfig().Messages
	assert.Equal(t, "Please enter a number between 3 and 7.", m.InvalidCountText(3, 7))
	assert.Equal(t, "Excellent memory!", m.WinText(4))

	m.Loss = "Lost at {n} tiles"
	assert.Equal(t, "Lost at 6 tiles", m.LossText(6))
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		pause    int
		interval int
	}{
		{DifficultyEasy, 1500, 2500},
		{DifficultyNormal, 1000, 2000},
		{DifficultyHard, 500, 1200},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultScrambleConfig()
			ApplyScramblePreset(&cfg, tc.preset)
			assert.Equal(t, tc.pause, cfg.Timing.PausePerTileMS)
			assert.Equal(t, tc.interval, cfg.Timing.ScrambleIntervalMS)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	p, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParseDifficulty("fixed")
	assert.Error(t, err)
}

func TestPromptText(t *testing.T) {
	m := DefaultScrambleConfig().Messages
	assert.Equal(t, "How many tiles? (3-7) then press Enter", m.PromptText(3, 7))
}
