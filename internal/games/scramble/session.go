package scramble

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-scramble/internal/config"
	"github.com/vovakirdan/tui-scramble/internal/timer"
)

// ErrInvalidRoundSize is returned when the requested tile count is missing,
// not a number, or outside the configured bounds. It is always recoverable.
var ErrInvalidRoundSize = errors.New("invalid round size")

// State is the phase of a round.
type State string

const (
	StateIdle          State = "idle"
	StateScrambling    State = "scrambling"
	StateAwaitingInput State = "awaiting_input"
	StateWon           State = "won"
	StateLost          State = "lost"
)

// Events of the round state machine.
const (
	eventStart  = "start"
	eventAbort  = "abort"
	eventUnlock = "unlock"
	eventWin    = "win"
	eventLose   = "lose"
)

// MessageKind classifies what the message area shows.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageValidation
	MessageWin
	MessageLoss
)

// String returns a human-readable name for the kind.
func (k MessageKind) String() string {
	switch k {
	case MessageNone:
		return "none"
	case MessageValidation:
		return "validation"
	case MessageWin:
		return "win"
	case MessageLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Message is the current content of the message area.
type Message struct {
	Kind MessageKind
	Text string
}

// Notifier receives every change of the message area.
// An empty Message means the area was cleared.
type Notifier interface {
	Notify(msg Message)
}

// ClickResult tells what a click did.
type ClickResult int

const (
	ClickIgnored ClickResult = iota // not accepting input, or no interactive tile there
	ClickCorrect                    // expected tile, round continues
	ClickWon                        // expected tile, round complete
	ClickWrong                      // unexpected tile, round lost
)

// String returns a human-readable name for the result.
func (r ClickResult) String() string {
	switch r {
	case ClickIgnored:
		return "ignored"
	case ClickCorrect:
		return "correct"
	case ClickWon:
		return "won"
	case ClickWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// SessionDeps are the collaborators a Session works with.
// Surface and Queue are required; the rest default to no-ops or fresh values.
type SessionDeps struct {
	Config   config.ScrambleConfig
	Surface  Surface
	Queue    *timer.Queue
	Rand     *rand.Rand
	Notifier Notifier
	Logger   *log.Logger
}

// Session runs rounds: it validates the tile count, builds the board, waits
// for the player to memorize it, scrambles it and then judges clicks.
type Session struct {
	cfg       config.ScrambleConfig
	queue     *timer.Queue
	board     *Board
	scrambler *Scrambler
	machine   *fsm.FSM
	notifier  Notifier
	logger    *log.Logger

	correctOrder  []int
	expectedIndex int
	clickedValues []int
	message       Message
	pause         timer.Handle
	round         int
}

// NewSession wires a session from its dependencies.
func NewSession(deps SessionDeps) *Session {
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Queue == nil {
		deps.Queue = timer.New()
	}

	board := NewBoard(deps.Rand, deps.Surface, deps.Config.Tiles.Width, deps.Config.Tiles.Height)
	s := &Session{
		cfg:       deps.Config,
		queue:     deps.Queue,
		board:     board,
		scrambler: NewScrambler(deps.Queue, board),
		notifier:  deps.Notifier,
		logger:    deps.Logger,
	}
	s.machine = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StateIdle), string(StateWon), string(StateLost)}, Dst: string(StateScrambling)},
			{Name: eventAbort, Src: []string{string(StateScrambling), string(StateAwaitingInput)}, Dst: string(StateIdle)},
			{Name: eventUnlock, Src: []string{string(StateScrambling)}, Dst: string(StateAwaitingInput)},
			{Name: eventWin, Src: []string{string(StateAwaitingInput)}, Dst: string(StateWon)},
			{Name: eventLose, Src: []string{string(StateAwaitingInput)}, Dst: string(StateLost)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.logger.Debug("round state", "round", s.round, "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
	return s
}

// Start parses the raw content of the tile count field and starts a round.
func (s *Session) Start(input string) error {
	text := strings.TrimSpace(input)
	n, err := strconv.Atoi(text)
	if err != nil {
		return s.reject(fmt.Errorf("%w: %q is not a number", ErrInvalidRoundSize, text))
	}
	return s.StartN(n)
}

// StartN starts a round of n tiles.
//
// An out-of-range n leaves the session untouched apart from the validation
// message. Otherwise every timer of the previous round is cancelled before
// the new board is built, so nothing from that round can reach this one.
func (s *Session) StartN(n int) error {
	lo, hi := s.cfg.Tiles.Min, s.cfg.Tiles.Max
	if n < lo || n > hi {
		return s.reject(fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidRoundSize, n, lo, hi))
	}

	s.cancelTimers()
	if s.machine.Can(eventAbort) {
		s.fire(eventAbort)
	}

	s.round++
	s.expectedIndex = 0
	s.clickedValues = nil
	s.setMessage(Message{})

	s.board.Build(n)
	s.board.LayoutRows()
	s.correctOrder = make([]int, n)
	for i := range s.correctOrder {
		s.correctOrder[i] = i + 1
	}

	s.fire(eventStart)

	pause := time.Duration(n) * s.cfg.Timing.PausePerTile()
	s.pause = s.queue.After(pause, s.beginScramble)
	s.logger.Info("round started", "round", s.round, "tiles", n, "pause", pause, "interval", s.cfg.Timing.ScrambleInterval())
	return nil
}

func (s *Session) reject(err error) error {
	s.setMessage(Message{
		Kind: MessageValidation,
		Text: s.cfg.Messages.InvalidCountText(s.cfg.Tiles.Min, s.cfg.Tiles.Max),
	})
	s.logger.Warn("round rejected", "error", err)
	return err
}

// Abort cancels the round in progress, if any, and empties the board.
func (s *Session) Abort() {
	s.cancelTimers()
	if s.machine.Can(eventAbort) {
		s.fire(eventAbort)
	}
	s.board.Clear()
	s.correctOrder = nil
	s.expectedIndex = 0
	s.clickedValues = nil
}

func (s *Session) cancelTimers() {
	if s.pause.Valid() {
		s.queue.Cancel(s.pause)
		s.pause = timer.Handle{}
	}
	s.scrambler.Cancel()
}

func (s *Session) beginScramble() {
	s.pause = timer.Handle{}
	s.scrambler.Run(s.board.Tiles(), s.cfg.Timing.ScrambleInterval(), s.onScrambleStep, s.onScrambleComplete)
}

func (s *Session) onScrambleStep(step int) {
	if step == 0 {
		s.board.HideLabels()
	}
	s.logger.Debug("scramble step", "round", s.round, "step", step+1, "of", s.board.Count())
}

func (s *Session) onScrambleComplete() {
	s.board.HideLabels()
	s.board.EnableAll()
	s.fire(eventUnlock)
}

// Click judges a click on the tile with the given value.
func (s *Session) Click(value int) ClickResult {
	if s.State() != StateAwaitingInput {
		return ClickIgnored
	}
	tile := s.board.Tile(value)
	if tile == nil || !tile.Interactive() {
		return ClickIgnored
	}

	n := len(s.correctOrder)
	if value != s.correctOrder[s.expectedIndex] {
		s.board.ShowLabels()
		if s.cfg.LossReveal == config.LossRevealOffending {
			tile.Mark = MarkIncorrect
		} else {
			s.board.MarkAll(MarkIncorrect)
		}
		s.board.DisableAll()
		s.fire(eventLose)
		s.setMessage(Message{Kind: MessageLoss, Text: s.cfg.Messages.LossText(n)})
		s.logger.Info("round lost", "round", s.round, "expected", s.correctOrder[s.expectedIndex], "clicked", value)
		return ClickWrong
	}

	tile.ShowLabel()
	tile.Mark = MarkCorrect
	s.expectedIndex++
	s.clickedValues = append(s.clickedValues, value)

	if s.expectedIndex == n {
		s.board.DisableAll()
		s.fire(eventWin)
		s.setMessage(Message{Kind: MessageWin, Text: s.cfg.Messages.WinText(n)})
		s.logger.Info("round won", "round", s.round, "tiles", n)
		return ClickWon
	}
	return ClickCorrect
}

// ClickAt judges a click on the surface cell (x, y).
func (s *Session) ClickAt(x, y int) ClickResult {
	if s.State() != StateAwaitingInput {
		return ClickIgnored
	}
	tile := s.board.TileAt(x, y)
	if tile == nil {
		return ClickIgnored
	}
	return s.Click(tile.Value)
}

// fire runs a state machine event. Callers only fire events that are valid
// in the current state, so an error means the table above is wrong.
func (s *Session) fire(event string) {
	if err := s.machine.Event(context.Background(), event); err != nil {
		s.logger.Error("state machine rejected event", "event", event, "state", s.machine.Current(), "error", err)
	}
}

func (s *Session) setMessage(m Message) {
	s.message = m
	if s.notifier != nil {
		s.notifier.Notify(m)
	}
}

// State returns the phase of the current round.
func (s *Session) State() State {
	return State(s.machine.Current())
}

// Board returns the board of the current round.
func (s *Session) Board() *Board {
	return s.board
}

// Round returns how many rounds were started.
func (s *Session) Round() int {
	return s.round
}

// ExpectedIndex returns the position in the order the next click must match.
func (s *Session) ExpectedIndex() int {
	return s.expectedIndex
}

// ExpectedValue returns the value the next click must hit, or 0 when no
// click is expected.
func (s *Session) ExpectedValue() int {
	if s.State() != StateAwaitingInput || s.expectedIndex >= len(s.correctOrder) {
		return 0
	}
	return s.correctOrder[s.expectedIndex]
}

// ClickedValues returns the accepted values in click order.
func (s *Session) ClickedValues() []int {
	return slices.Clone(s.clickedValues)
}

// Message returns the current content of the message area.
func (s *Session) Message() Message {
	return s.message
}

// Memorizing reports whether the board is shown before the scramble starts.
func (s *Session) Memorizing() bool {
	return s.pause.Valid()
}

// ScrambleProgress returns how many scramble steps have fired and how many there are.
func (s *Session) ScrambleProgress() (done, total int) {
	total = s.board.Count()
	if s.State() != StateScrambling || s.Memorizing() {
		return 0, total
	}
	return total - s.scrambler.Remaining(), total
}

// UntilNext returns the time left before the next scheduled event of the round.
func (s *Session) UntilNext() (time.Duration, bool) {
	due, ok := s.queue.NextDue()
	if !ok {
		return 0, false
	}
	return due - s.queue.Now(), true
}
