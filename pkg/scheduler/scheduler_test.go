package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestScheduleFiresAfterDelay(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	fired := 0

	s.Schedule("poll", 5*time.Second, func() { fired++ })
	assert.True(t, s.Pending("poll"))

	clock.Advance(4 * time.Second)
	assert.Equal(t, 0, fired)
	clock.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.False(t, s.Pending("poll"))
}

func TestScheduleReplacesPendingTimer(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	var got []string

	s.Schedule("poll", 5*time.Second, func() { got = append(got, "first") })
	s.Schedule("poll", 2*time.Second, func() { got = append(got, "second") })

	clock.Advance(10 * time.Second)
	assert.Equal(t, []string{"second"}, got)
}

func TestScheduleEarlier(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	var got []string

	s.Schedule("poll", 5*time.Second, func() { got = append(got, "regular") })
	assert.False(t, s.ScheduleEarlier("poll", 10*time.Second, func() { got = append(got, "later") }))
	assert.True(t, s.ScheduleEarlier("poll", time.Second, func() { got = append(got, "sooner") }))

	at, ok := s.Deadline("poll")
	require.True(t, ok)
	assert.Equal(t, epoch.Add(time.Second), at)

	clock.Advance(10 * time.Second)
	assert.Equal(t, []string{"sooner"}, got)
}

func TestCancelIsIdempotent(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	fired := false

	s.Schedule("sweep", time.Second, func() { fired = true })
	assert.True(t, s.Cancel("sweep"))
	assert.False(t, s.Cancel("sweep"))
	assert.False(t, s.Cancel("never"))

	clock.Advance(time.Minute)
	assert.False(t, fired)
}

func TestCallbackCanReschedule(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	count := 0

	var tick func()
	tick = func() {
		count++
		s.Schedule("poll", 3*time.Second, tick)
	}
	s.Schedule("poll", 3*time.Second, tick)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
	assert.True(t, s.Pending("poll"))
}

func TestCloseStopsEverything(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	fired := false

	s.Schedule("a", time.Second, func() { fired = true })
	s.Close()
	s.Schedule("b", time.Second, func() { fired = true })

	clock.Advance(time.Minute)
	assert.False(t, fired)
	assert.Equal(t, 0, clock.Pending())
}

func TestRealClockFires(t *testing.T) {
	s := New(nil)
	defer s.Close()
	var fired atomic.Bool

	s.Schedule("x", 5*time.Millisecond, func() { fired.Store(true) })
	assert.Eventually(t, fired.Load, time.Second, 5*time.Millisecond)
}

func TestDebouncerCoalesces(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	calls := 0
	d := NewDebouncer(s, "changed", 100*time.Millisecond, func() { calls++ })

	d.Trigger()
	clock.Advance(50 * time.Millisecond)
	d.Trigger()
	d.Trigger()
	assert.True(t, d.Pending())
	clock.Advance(50 * time.Millisecond)

	assert.Equal(t, 1, calls)
	assert.False(t, d.Pending())

	d.Trigger()
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, calls)
}

func TestDebouncerCancel(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	calls := 0
	d := NewDebouncer(s, "changed", 100*time.Millisecond, func() { calls++ })

	d.Trigger()
	d.Cancel()
	clock.Advance(time.Second)
	assert.Equal(t, 0, calls)
}

func TestMutateExcludesConcurrentCallers(t *testing.T) {
	s := New(NewManualClock(epoch))
	holding := make(chan struct{})
	release := make(chan struct{})
	go s.Mutate(func() {
		close(holding)
		<-release
	})
	<-holding

	var ran atomic.Bool
	done := make(chan struct{})
	go func() {
		s.Mutate(func() { ran.Store(true) })
		close(done)
	}()

	assert.Never(t, ran.Load, 20*time.Millisecond, time.Millisecond)
	close(release)
	<-done
	assert.True(t, ran.Load())
}

func TestMutateDoesNotWaitForCallbacks(t *testing.T) {
	s := New(NewManualClock(epoch))
	ran := false
	// A poll holds the callback lock across its network call; local
	// changes must not queue behind it.
	s.Do(func() {
		s.Mutate(func() { ran = true })
	})
	assert.True(t, ran)
}
