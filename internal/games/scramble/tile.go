// Package scramble implements the memory game: numbered tiles are shown,
// scrambled across the board with their labels hidden, and the player must
// click them back in ascending order.
package scramble

import "github.com/vovakirdan/tui-scramble/internal/core"

// Mark is the visual verdict attached to a tile after it was judged.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)

// String returns a human-readable name for the mark.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkCorrect:
		return "correct"
	case MarkIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Tile is one clickable game piece.
type Tile struct {
	Value    int        // 1..N, unique within a round
	Color    core.Color // background, #RRGGBB
	Position core.Point // top-left cell, relative to the board surface
	Mark     Mark

	labelVisible bool
	interactive  bool
}

// NewTile creates a tile with its label visible that does not accept clicks.
func NewTile(value int, color core.Color) *Tile {
	return &Tile{
		Value:        value,
		Color:        color,
		labelVisible: true,
	}
}

// HideLabel hides the numeric label without touching the value.
func (t *Tile) HideLabel() { t.labelVisible = false }

// ShowLabel reveals the numeric label.
func (t *Tile) ShowLabel() { t.labelVisible = true }

// LabelVisible reports whether the numeric label is shown.
func (t *Tile) LabelVisible() bool { return t.labelVisible }

// Enable lets the tile register clicks.
func (t *Tile) Enable() { t.interactive = true }

// Disable stops the tile from registering clicks.
func (t *Tile) Disable() { t.interactive = false }

// Interactive reports whether the tile accepts clicks.
func (t *Tile) Interactive() bool { return t.interactive }

// MoveTo sets the position unconditionally; callers keep it within the surface.
func (t *Tile) MoveTo(x, y int) {
	t.Position = core.Point{X: x, Y: y}
}

// Rect returns the area covered by the tile for the given footprint.
func (t *Tile) Rect(w, h int) core.Rect {
	return core.NewRect(t.Position.X, t.Position.Y, w, h)
}
