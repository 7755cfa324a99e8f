package scramble

import (
	"time"

	"github.com/vovakirdan/tui-scramble/internal/core"
)

// TileSnapshot is the visible state of one tile.
type TileSnapshot struct {
	Value        int
	Color        core.Color
	Position     core.Point
	LabelVisible bool
	Interactive  bool
	Mark         Mark
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Now           time.Duration // virtual clock
	Round         int
	State         State
	PausedSmall   bool
	Tiles         []TileSnapshot
	ExpectedIndex int
	Clicked       []int
	Message       Message
	Stats         Stats
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	tiles := g.session.Board().Tiles()
	ts := make([]TileSnapshot, len(tiles))
	for i, t := range tiles {
		ts[i] = TileSnapshot{
			Value:        t.Value,
			Color:        t.Color,
			Position:     t.Position,
			LabelVisible: t.LabelVisible(),
			Interactive:  t.Interactive(),
			Mark:         t.Mark,
		}
	}

	return Snapshot{
		Tick:          g.tick,
		Now:           g.queue.Now(),
		Round:         g.session.Round(),
		State:         g.session.State(),
		PausedSmall:   g.tooSmall,
		Tiles:         ts,
		ExpectedIndex: g.session.ExpectedIndex(),
		Clicked:       g.session.ClickedValues(),
		Message:       g.message,
		Stats:         g.stats,
	}
}
