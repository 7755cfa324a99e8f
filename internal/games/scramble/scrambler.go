package scramble

import (
	"time"

	"github.com/vovakirdan/tui-scramble/internal/timer"
)

// Positioner hands out fresh tile positions on the current surface.
type Positioner interface {
	RandomTilePosition() (x, y int)
}

// Scrambler repositions every tile once per tile, at a fixed interval, and
// then reports completion. Its pending steps live in a timer queue so a new
// round can drop them all in one call.
type Scrambler struct {
	queue      *timer.Queue
	positioner Positioner

	handles   []timer.Handle
	run       uint64 // bumped on every Run and Cancel; stale steps compare against it
	remaining int
}

// NewScrambler creates a scrambler scheduling on queue.
func NewScrambler(queue *timer.Queue, positioner Positioner) *Scrambler {
	return &Scrambler{
		queue:      queue,
		positioner: positioner,
	}
}

// Run schedules len(tiles) steps. Step i fires interval*i after Run and moves
// all tiles, not only tile i, to new random positions before calling
// onEachStep(i). onComplete runs exactly once, right after the last step.
// An earlier run still in flight is cancelled first.
func (s *Scrambler) Run(tiles []*Tile, interval time.Duration, onEachStep func(step int), onComplete func()) {
	s.Cancel()
	run := s.run

	if len(tiles) == 0 {
		s.handles = []timer.Handle{s.queue.After(0, func() {
			if s.run != run {
				return
			}
			s.handles = nil
			if onComplete != nil {
				onComplete()
			}
		})}
		return
	}

	last := len(tiles) - 1
	s.remaining = len(tiles)
	s.handles = make([]timer.Handle, 0, len(tiles))

	for i := range tiles {
		step := i
		h := s.queue.After(interval*time.Duration(step), func() {
			if s.run != run {
				return
			}
			for _, t := range tiles {
				t.MoveTo(s.positioner.RandomTilePosition())
			}
			s.remaining--
			if onEachStep != nil {
				onEachStep(step)
			}
			if step == last {
				s.handles = nil
				if onComplete != nil {
					onComplete()
				}
			}
		})
		s.handles = append(s.handles, h)
	}
}

// Cancel drops every pending step. Nothing from the cancelled run fires afterwards.
func (s *Scrambler) Cancel() {
	for _, h := range s.handles {
		s.queue.Cancel(h)
	}
	s.handles = nil
	s.remaining = 0
	s.run++
}

// Running reports whether steps are still pending.
func (s *Scrambler) Running() bool {
	return len(s.handles) > 0
}

// Remaining returns the number of steps that have not fired yet.
func (s *Scrambler) Remaining() int {
	return s.remaining
}
