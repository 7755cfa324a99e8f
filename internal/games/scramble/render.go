package scramble

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-scramble/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	frame := g.boardRect()
	dst.DrawBox(frame, core.ColorGray)
	g.renderTiles(dst, frame.Inset(1))

	g.renderMessage(dst, frame.Bottom())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the title, the tally and the round status on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	left := "SCRAMBLE"
	if r := g.session.Round(); r > 0 {
		left = fmt.Sprintf("SCRAMBLE  round %d", r)
	}
	dst.DrawTextColored(1, 0, left, core.ColorCyan)

	tally := fmt.Sprintf("won %d  lost %d  streak %d  best %d",
		g.stats.Wins, g.stats.Losses, g.stats.Streak, g.stats.BestStreak)
	dst.DrawTextCentered(0, tally, core.ColorGray)

	status := g.statusText()
	dst.DrawTextColored(g.screenW-utf8.RuneCountInString(status)-1, 0, status, core.ColorBrightWhite)
}

func (g *Game) statusText() string {
	s := g.session
	switch s.State() {
	case StateScrambling:
		if s.Memorizing() {
			left, _ := s.UntilNext()
			return fmt.Sprintf("Memorize! %ds", int((left+time.Second-1)/time.Second))
		}
		done, total := s.ScrambleProgress()
		return fmt.Sprintf("Scrambling %d/%d", done, total)
	case StateAwaitingInput:
		return fmt.Sprintf("Find %d of %d", s.ExpectedValue(), s.Board().Count())
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Ready"
	}
}

// renderTiles draws the tiles in creation order, so later tiles cover earlier ones.
// Tiles left outside the surface by a resize are clipped.
func (g *Game) renderTiles(dst *core.Screen, inner core.Rect) {
	board := g.session.Board()
	tw, th := board.TileSize()
	focused := g.focusedTile()
	awaiting := g.session.State() == StateAwaitingInput

	for _, t := range board.Tiles() {
		rect := t.Rect(tw, th).Offset(inner.X, inner.Y)
		visible := rect.Intersect(inner)
		if visible.Empty() {
			continue
		}
		dst.FillRect(visible, t.Color)

		if !inner.ContainsRect(rect) {
			continue
		}

		fg := t.Color.Contrast()
		switch t.Mark {
		case MarkCorrect:
			dst.DrawBox(rect, core.ColorBrightGreen)
		case MarkIncorrect:
			dst.DrawBox(rect, core.ColorBrightRed)
		}

		midY := rect.Y + rect.H/2
		if t.LabelVisible() {
			label := fmt.Sprint(t.Value)
			dst.DrawTextColored(rect.X+(rect.W-len(label))/2, midY, label, fg)
		}
		if awaiting && t == focused && t.Interactive() && rect.W >= 5 {
			dst.DrawTextColored(rect.X+1, midY, "▸", fg)
			dst.DrawTextColored(rect.Right()-2, midY, "◂", fg)
		}
	}
}

// renderMessage draws the message area below the board frame.
func (g *Game) renderMessage(dst *core.Screen, y int) {
	if g.message.Kind == MessageNone || g.message.Text == "" {
		if g.session.State() == StateAwaitingInput {
			dst.DrawTextCentered(y, "Click the tiles in ascending order", core.ColorGray)
		}
		return
	}

	var color core.Color
	switch g.message.Kind {
	case MessageValidation:
		color = core.ColorYellow
	case MessageWin:
		color = core.ColorBrightGreen
	case MessageLoss:
		color = core.ColorBrightRed
	}
	text := g.message.Text
	if g.roundOver() {
		text += fmt.Sprintf("  (r: play %d again)", g.lastCount)
	}
	dst.DrawTextCentered(y, text, color)
}
