package scramble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scramble/internal/config"
	"github.com/vovakirdan/tui-scramble/internal/core"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	g := New(config.DefaultScrambleConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 12345})
	return g
}

func submit(g *Game, text string) core.StepResult {
	in := core.NewInputFrame()
	in.Submit(text)
	return g.Step(in)
}

// runUntil steps the game with empty input until cond holds.
func runUntil(t *testing.T, g *Game, cond func() bool) {
	t.Helper()
	empty := core.NewInputFrame()
	for range 60 * 60 {
		if cond() {
			return
		}
		g.Step(empty)
	}
	t.Fatal("condition not reached within a minute of ticks")
}

func awaiting(g *Game) func() bool {
	return func() bool { return g.Session().State() == StateAwaitingInput }
}

// spreadTiles moves the tiles apart so screen clicks hit exactly one tile.
func spreadTiles(g *Game) {
	for i, tile := range g.Session().Board().Tiles() {
		tile.MoveTo(i*8, 0)
	}
}

func clickTile(g *Game, value int) core.StepResult {
	tile := g.Session().Board().Tile(value)
	inner := g.boardRect().Inset(1)
	in := core.NewInputFrame()
	in.Click(inner.X+tile.Position.X+1, inner.Y+tile.Position.Y+1)
	return g.Step(in)
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultScrambleConfig(), nil)
	assert.Equal(t, "scramble", g.ID())
	assert.Equal(t, "Scramble", g.Title())
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 80, 24)
	g2 := newTestGame(t, 80, 24)

	submit(g1, "5")
	submit(g2, "5")
	empty := core.NewInputFrame()
	for range 900 {
		g1.Step(empty)
		g2.Step(empty)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestStepStartsRound(t *testing.T) {
	g := newTestGame(t, 80, 24)

	res := submit(g, "3")
	assert.Equal(t, []string{"round 1 started with 3 tiles"}, res.Events)
	assert.True(t, res.State.Busy)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 3, g.LastCount())

	snap := g.Snapshot()
	assert.Equal(t, StateScrambling, snap.State)
	assert.Len(t, snap.Tiles, 3)
	assert.Equal(t, uint64(1), snap.Tick)
}

func TestStepRejectsInvalidCount(t *testing.T) {
	g := newTestGame(t, 80, 24)

	res := submit(g, "12")
	assert.Empty(t, res.Events)
	assert.Equal(t, MessageValidation, g.Snapshot().Message.Kind)
	assert.Equal(t, StateIdle, g.Snapshot().State)
	assert.Zero(t, g.LastCount())
}

func TestWinWithMouse(t *testing.T) {
	g := newTestGame(t, 80, 24)
	submit(g, "3")
	runUntil(t, g, awaiting(g))
	spreadTiles(g)

	assert.Empty(t, clickTile(g, 1).Events)
	clickTile(g, 2)
	res := clickTile(g, 3)

	assert.Equal(t, []string{"round 1 won"}, res.Events)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 1, res.State.Score)
	assert.Equal(t, Stats{Rounds: 1, Wins: 1, Streak: 1, BestStreak: 1}, g.Stats())
	assert.Equal(t, MessageWin, g.Snapshot().Message.Kind)
}

func TestLossWithMouse(t *testing.T) {
	g := newTestGame(t, 80, 24)
	submit(g, "3")
	runUntil(t, g, awaiting(g))
	spreadTiles(g)

	clickTile(g, 1)
	res := clickTile(g, 3)

	assert.Equal(t, []string{"round 1 lost"}, res.Events)
	assert.Equal(t, []int{1}, g.Snapshot().Clicked)
	assert.Equal(t, 1, g.Stats().Losses)

	// Clicks after the round ended change nothing.
	clickTile(g, 2)
	assert.Equal(t, []int{1}, g.Snapshot().Clicked)
	assert.Equal(t, 1, g.Stats().Rounds)
}

func TestClicksOutsideBoardIgnored(t *testing.T) {
	g := newTestGame(t, 80, 24)
	submit(g, "3")
	runUntil(t, g, awaiting(g))

	in := core.NewInputFrame()
	in.Click(0, 0)  // HUD
	in.Click(0, 5)  // frame border
	in.Click(5, 23) // message row
	g.Step(in)
	assert.Equal(t, StateAwaitingInput, g.Session().State())
	assert.Zero(t, g.Session().ExpectedIndex())
}

func TestWinWithKeyboard(t *testing.T) {
	g := newTestGame(t, 80, 24)
	submit(g, "4")
	runUntil(t, g, awaiting(g))

	sel := core.NewInputFrame()
	sel.Set(core.ActionSelect)
	next := core.NewInputFrame()
	next.Set(core.ActionNext)

	// Tiles are kept in creation order, so the cursor walks 1..n.
	for v := 1; v <= 4; v++ {
		require.Equal(t, v, g.focusedTile().Value)
		g.Step(sel)
		if v < 4 {
			g.Step(next)
		}
	}
	assert.Equal(t, StateWon, g.Session().State())
}

func TestCursorWraps(t *testing.T) {
	g := newTestGame(t, 80, 24)
	submit(g, "3")
	runUntil(t, g, awaiting(g))

	prev := core.NewInputFrame()
	prev.Set(core.ActionPrev)
	g.Step(prev)
	assert.Equal(t, 3, g.focusedTile().Value)

	next := core.NewInputFrame()
	next.Set(core.ActionNext)
	g.Step(next)
	assert.Equal(t, 1, g.focusedTile().Value)
}

func TestRestartRepeatsLastCount(t *testing.T) {
	g := newTestGame(t, 80, 24)
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)

	assert.Empty(t, g.Step(restart).Events, "nothing to restart yet")

	submit(g, "5")
	assert.Empty(t, g.Step(restart).Events, "restart only applies to a finished round")

	runUntil(t, g, awaiting(g))
	spreadTiles(g)
	clickTile(g, 2)
	require.Equal(t, StateLost, g.Session().State())

	res := g.Step(restart)
	assert.Equal(t, []string{"round 2 started with 5 tiles"}, res.Events)
	assert.Equal(t, Message{}, g.Snapshot().Message)
	assert.Equal(t, 0, g.Stats().Streak)
}

func TestTooSmallPausesClock(t *testing.T) {
	g := newTestGame(t, 20, 6)
	submit(g, "3")
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	snap := g.Snapshot()
	assert.True(t, snap.PausedSmall)
	assert.Zero(t, snap.Now)

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	assert.False(t, g.Snapshot().PausedSmall)
	assert.Positive(t, g.Snapshot().Now)
}

func TestRenderMemorizeLayout(t *testing.T) {
	g := newTestGame(t, 80, 24)
	submit(g, "3")

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, screen.Row(0), "round 1")
	assert.Contains(t, screen.Row(0), "Memorize!")
	assert.Equal(t, '┌', screen.Get(0, 1))

	inner := g.boardRect().Inset(1)
	for _, tile := range g.Session().Board().Tiles() {
		cell := screen.GetCell(inner.X+tile.Position.X, inner.Y+tile.Position.Y)
		assert.Equal(t, tile.Color, cell.Bg, "tile %d background", tile.Value)

		mid := screen.Row(inner.Y + tile.Position.Y + 1)
		assert.Contains(t, mid, string(rune('0'+tile.Value)))
	}
	assert.NotContains(t, out, "Window too small")
}

func TestRenderHidesLabelsAndShowsOutcome(t *testing.T) {
	g := newTestGame(t, 80, 24)
	submit(g, "3")
	runUntil(t, g, awaiting(g))
	spreadTiles(g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	inner := g.boardRect().Inset(1)
	row := screen.Row(inner.Y + 1)
	for v := 1; v <= 3; v++ {
		assert.NotContains(t, row, string(rune('0'+v)), "labels are hidden while awaiting input")
	}
	assert.Contains(t, screen.Row(0), "Find 1 of 3")

	clickTile(g, 2)
	g.Render(screen)
	assert.Contains(t, screen.Row(23), "Wrong order!")
	assert.True(t, strings.Contains(screen.Row(0), "Lost"))
	assert.Equal(t, core.ColorBrightRed, screen.GetCell(inner.X, inner.Y).Fg, "lost tiles get a red border")
}
