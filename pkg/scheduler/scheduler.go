package scheduler

import (
	"sync"
	"time"
)

type entry struct {
	timer    Timer
	gen      uint64
	deadline time.Time
}

// Scheduler runs named timers and serializes their callbacks.
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	entries map[string]*entry
	gen     uint64
	closed  bool

	// run serializes callbacks.
	run sync.Mutex

	// state serializes changes to the device mirror. It is taken inside run
	// by poll cycles and on its own by commands, and never held across a
	// transport call.
	state sync.Mutex
}

// New creates a scheduler. A nil clock uses the wall clock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	return &Scheduler{clock: clock, entries: make(map[string]*entry)}
}

// Clock returns the scheduler's clock.
func (s *Scheduler) Clock() Clock { return s.clock }

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time { return s.clock.Now() }

// Schedule runs fn after d under name, replacing any pending timer with
// the same name.
func (s *Scheduler) Schedule(name string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.scheduleLocked(name, d, fn)
}

// ScheduleEarlier schedules fn only if no timer with name is pending or
// the pending one is due later than d from now. It reports whether the
// timer was (re)scheduled.
func (s *Scheduler) ScheduleEarlier(name string, d time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if e, ok := s.entries[name]; ok && !e.deadline.After(s.clock.Now().Add(d)) {
		return false
	}
	s.scheduleLocked(name, d, fn)
	return true
}

func (s *Scheduler) scheduleLocked(name string, d time.Duration, fn func()) {
	if e, ok := s.entries[name]; ok {
		e.timer.Stop()
	}
	s.gen++
	gen := s.gen
	e := &entry{gen: gen, deadline: s.clock.Now().Add(d)}
	s.entries[name] = e
	e.timer = s.clock.AfterFunc(d, func() { s.fire(name, gen, fn) })
}

func (s *Scheduler) fire(name string, gen uint64, fn func()) {
	s.mu.Lock()
	e, ok := s.entries[name]
	if !ok || e.gen != gen || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.entries, name)
	s.mu.Unlock()

	s.run.Lock()
	defer s.run.Unlock()
	fn()
}

// Cancel stops the named timer. Cancelling an unknown or already fired
// timer is a no-op.
func (s *Scheduler) Cancel(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[name]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.entries, name)
	return true
}

// Pending reports whether a timer with name is waiting to fire.
func (s *Scheduler) Pending(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[name]
	return ok
}

// Deadline returns when the named timer is due.
func (s *Scheduler) Deadline(name string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[name]
	if !ok {
		return time.Time{}, false
	}
	return e.deadline, true
}

// Do runs fn with the callback lock held, so it never overlaps a timer
// callback.
func (s *Scheduler) Do(fn func()) {
	s.run.Lock()
	defer s.run.Unlock()
	fn()
}

// Mutate runs fn holding the state lock. Every change to the property
// store and the write ledger goes through it, so reconciling and applying an
// inbound batch is atomic with respect to an optimistic write. fn must not
// do network I/O or call Mutate itself.
func (s *Scheduler) Mutate(fn func()) {
	s.state.Lock()
	defer s.state.Unlock()
	fn()
}

// Close cancels all timers. Later Schedule calls are ignored.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for name, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, name)
	}
}
