package scramble

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scramble/internal/config"
	"github.com/vovakirdan/tui-scramble/internal/core"
	"github.com/vovakirdan/tui-scramble/internal/timer"
)

// Screen layout: one HUD row, the board frame, one message row.
const (
	hudRows     = 1
	messageRows = 1
	minScreenW  = 30
)

// Game adapts a Session to the tick-driven platform: it advances the timer
// queue once per tick, routes input to the session and draws the board.
type Game struct {
	cfg    config.ScrambleConfig
	logger *log.Logger

	rng     *rand.Rand
	queue   *timer.Queue
	session *Session
	stats   Stats
	message Message

	tick     uint64
	tickRate int
	screenW  int
	screenH  int
	tooSmall bool

	cursor    int // index into the board's tiles of the keyboard focus
	lastCount int
}

// New creates a game using cfg. A nil logger discards output.
func New(cfg config.ScrambleConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "scramble"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Scramble"
}

// Reset discards any round in progress and prepares an idle game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.session != nil {
		g.session.Abort()
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.queue = timer.New()
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.stats = Stats{}
	g.message = Message{}
	g.cursor = 0
	g.lastCount = 0

	g.session = NewSession(SessionDeps{
		Config:   g.cfg,
		Surface:  g,
		Queue:    g.queue,
		Rand:     g.rng,
		Notifier: g,
		Logger:   g.logger,
	})
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the round.
// Tiles outside the new surface come back on the next scramble step.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	bw, bh := g.Size()
	g.tooSmall = w < minScreenW || bw < g.cfg.Tiles.Width || bh < g.cfg.Tiles.Height
}

// Size returns the inner size of the board frame. Game is the Surface of its session.
func (g *Game) Size() (w, h int) {
	inner := g.boardRect().Inset(1)
	return inner.W, inner.H
}

// Notify records the message area content. Game is the Notifier of its session.
func (g *Game) Notify(msg Message) {
	g.message = msg
}

// boardRect is the board frame, border included, in screen coordinates.
func (g *Game) boardRect() core.Rect {
	return core.NewRect(0, hudRows, g.screenW, core.Max(g.screenH-hudRows-messageRows, 0))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []string

	if in.Has(core.ActionStart) {
		events = append(events, g.start(func() error { return g.session.Start(in.CountText) }))
	}
	if in.Has(core.ActionRestart) && g.lastCount > 0 && g.roundOver() {
		events = append(events, g.start(func() error { return g.session.StartN(g.lastCount) }))
	}

	if g.session.State() == StateAwaitingInput {
		switch {
		case in.Has(core.ActionNext):
			g.moveCursor(1)
		case in.Has(core.ActionPrev):
			g.moveCursor(-1)
		}
		if in.Has(core.ActionSelect) {
			if t := g.focusedTile(); t != nil {
				events = append(events, g.record(g.session.Click(t.Value))...)
			}
		}
		inner := g.boardRect().Inset(1)
		for _, p := range in.Clicks {
			if !inner.Contains(p.X, p.Y) {
				continue
			}
			events = append(events, g.record(g.session.ClickAt(p.X-inner.X, p.Y-inner.Y))...)
		}
	}

	// The clock stands still while the board cannot be shown.
	if !g.tooSmall {
		g.queue.Advance(time.Second / time.Duration(g.tickRate))
	}

	return core.StepResult{State: g.State(), Events: compact(events)}
}

func (g *Game) start(begin func() error) string {
	if err := begin(); err != nil {
		return ""
	}
	g.lastCount = g.session.Board().Count()
	g.cursor = 0
	return fmt.Sprintf("round %d started with %d tiles", g.session.Round(), g.lastCount)
}

func (g *Game) record(r ClickResult) []string {
	switch r {
	case ClickWon:
		g.stats.Record(true)
		return []string{fmt.Sprintf("round %d won", g.session.Round())}
	case ClickWrong:
		g.stats.Record(false)
		return []string{fmt.Sprintf("round %d lost", g.session.Round())}
	}
	return nil
}

func compact(events []string) []string {
	out := events[:0]
	for _, e := range events {
		if e != "" {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (g *Game) roundOver() bool {
	st := g.session.State()
	return st == StateWon || st == StateLost
}

// moveCursor moves the keyboard focus to the next interactive tile in
// direction dir, wrapping around.
func (g *Game) moveCursor(dir int) {
	tiles := g.session.Board().Tiles()
	n := len(tiles)
	if n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		idx := ((g.cursor+dir*i)%n + n) % n
		if tiles[idx].Interactive() {
			g.cursor = idx
			return
		}
	}
}

func (g *Game) focusedTile() *Tile {
	tiles := g.session.Board().Tiles()
	if g.cursor < 0 || g.cursor >= len(tiles) {
		return nil
	}
	return tiles[g.cursor]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.stats.BestStreak,
		GameOver: st == StateWon || st == StateLost,
		Busy:     st == StateScrambling,
	}
}

// Session exposes the underlying round logic.
func (g *Game) Session() *Session {
	return g.session
}

// Stats returns the tally of finished rounds.
func (g *Game) Stats() Stats {
	return g.stats
}

// LastCount returns the tile count of the last started round, or 0.
func (g *Game) LastCount() int {
	return g.lastCount
}

// Prompt returns the hint shown next to the tile count field.
func (g *Game) Prompt() string {
	return g.cfg.Messages.PromptText(g.cfg.Tiles.Min, g.cfg.Tiles.Max)
}
