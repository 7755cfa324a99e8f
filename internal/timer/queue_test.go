package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceFiresInDueOrder(t *testing.T) {
	q := New()
	var got []string

	q.After(30*time.Millisecond, func() { got = append(got, "c") })
	q.After(10*time.Millisecond, func() { got = append(got, "a") })
	q.After(20*time.Millisecond, func() { got = append(got, "b") })

	assert.Equal(t, 0, q.Advance(5*time.Millisecond))
	assert.Empty(t, got)

	assert.Equal(t, 3, q.Advance(25*time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 30*time.Millisecond, q.Now())
	assert.Zero(t, q.Pending())
}

func TestEqualDueTimesKeepSchedulingOrder(t *testing.T) {
	q := New()
	var got []int
	for i := range 5 {
		q.After(time.Second, func() { got = append(got, i) })
	}

	q.Advance(time.Second)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestClockInsideCallback(t *testing.T) {
	q := New()
	var seen time.Duration
	q.After(40*time.Millisecond, func() { seen = q.Now() })

	q.Advance(time.Second)
	assert.Equal(t, 40*time.Millisecond, seen, "callbacks observe their own due time")
	assert.Equal(t, time.Second, q.Now())
}

func TestNestedSchedulingWithinWindow(t *testing.T) {
	q := New()
	var got []string

	q.After(10*time.Millisecond, func() {
		got = append(got, "outer")
		q.After(5*time.Millisecond, func() { got = append(got, "inner") })
		q.After(50*time.Millisecond, func() { got = append(got, "late") })
	})

	assert.Equal(t, 2, q.Advance(20*time.Millisecond))
	assert.Equal(t, []string{"outer", "inner"}, got)
	assert.Equal(t, 1, q.Pending())

	due, ok := q.NextDue()
	require.True(t, ok)
	assert.Equal(t, 60*time.Millisecond, due)
}

func TestCancel(t *testing.T) {
	q := New()
	fired := false
	h := q.After(time.Second, func() { fired = true })

	require.True(t, h.Valid())
	assert.True(t, q.Cancel(h))
	assert.False(t, q.Cancel(h), "second cancel is a no-op")

	q.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.False(t, q.Cancel(Handle{}), "zero handle is never valid")
}

func TestCancelAllInvalidatesHandles(t *testing.T) {
	q := New()
	count := 0
	old := q.After(time.Second, func() { count++ })
	q.After(2*time.Second, func() { count++ })

	gen := q.Generation()
	assert.Equal(t, 2, q.CancelAll())
	assert.NotEqual(t, gen, q.Generation())

	// A handle from the previous generation must not cancel a new task.
	fresh := q.After(time.Second, func() { count += 10 })
	assert.False(t, q.Cancel(old))

	q.Advance(3 * time.Second)
	assert.Equal(t, 10, count)
	assert.False(t, q.Cancel(fresh), "already fired")
}

func TestCancelAllFromCallback(t *testing.T) {
	q := New()
	var got []int
	q.After(time.Millisecond, func() {
		got = append(got, 1)
		q.CancelAll()
	})
	q.After(2*time.Millisecond, func() { got = append(got, 2) })

	q.Advance(time.Second)
	assert.Equal(t, []int{1}, got)
}

func TestNegativeDurations(t *testing.T) {
	q := New()
	fired := false
	q.After(-time.Second, func() { fired = true })

	assert.Equal(t, 1, q.Advance(-time.Second))
	assert.True(t, fired)
	assert.Zero(t, q.Now())
}
