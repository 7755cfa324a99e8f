// Package timer provides a cancellable queue of delayed callbacks driven by a
// virtual clock. The platform advances the clock once per tick, so every
// callback runs on the caller's goroutine and no locking is involved.
package timer

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never valid.
type Handle struct {
	id  uint64
	gen uint64
}

// Valid reports whether h was returned by After.
func (h Handle) Valid() bool {
	return h.id != 0
}

type task struct {
	id  uint64
	due time.Duration
	fn  func()
}

// Queue holds pending callbacks ordered by due time, then by scheduling order.
type Queue struct {
	now    time.Duration
	gen    uint64
	nextID uint64
	tasks  []task
}

// New creates an empty queue with its clock at zero.
func New() *Queue {
	return &Queue{gen: 1}
}

// Now returns the current virtual time.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Generation returns the current generation. It changes on every CancelAll.
func (q *Queue) Generation() uint64 {
	return q.gen
}

// After schedules fn to run once the clock has advanced by d.
// Negative delays are treated as zero.
func (q *Queue) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	q.nextID++
	t := task{id: q.nextID, due: q.now + d, fn: fn}

	// Insert after every task due at or before t so equal due times keep FIFO order.
	i := sort.Search(len(q.tasks), func(i int) bool {
		return q.tasks[i].due > t.due
	})
	q.tasks = append(q.tasks, task{})
	copy(q.tasks[i+1:], q.tasks[i:])
	q.tasks[i] = t

	return Handle{id: t.id, gen: q.gen}
}

// Cancel removes a pending callback. It returns false if the callback
// already ran, was cancelled, or belongs to an earlier generation.
func (q *Queue) Cancel(h Handle) bool {
	if !h.Valid() || h.gen != q.gen {
		return false
	}
	for i, t := range q.tasks {
		if t.id == h.id {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback and invalidates all outstanding
// handles. It returns how many callbacks were dropped.
func (q *Queue) CancelAll() int {
	n := len(q.tasks)
	q.tasks = nil
	q.gen++
	return n
}

// Pending returns the number of callbacks waiting to run.
func (q *Queue) Pending() int {
	return len(q.tasks)
}

// NextDue returns the due time of the earliest pending callback.
func (q *Queue) NextDue() (time.Duration, bool) {
	if len(q.tasks) == 0 {
		return 0, false
	}
	return q.tasks[0].due, true
}

// Advance moves the clock forward by dt, running every callback that falls
// due on the way in order. Callbacks may schedule or cancel others; newly
// scheduled callbacks that fall within the window run in the same call.
// It returns the number of callbacks run.
func (q *Queue) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := q.now + dt
	fired := 0

	for len(q.tasks) > 0 && q.tasks[0].due <= target {
		t := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.now = t.due
		t.fn()
		fired++
	}

	q.now = target
	return fired
}
