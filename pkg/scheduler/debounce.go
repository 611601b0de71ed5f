package scheduler

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into one call. The first trigger
// opens a window; triggers inside the window are absorbed and fn runs
// once when it closes.
type Debouncer struct {
	sched  *Scheduler
	name   string
	window time.Duration
	fn     func()

	mu      sync.Mutex
	pending bool
}

// NewDebouncer creates a debouncer on sched. The name must be unique
// within the scheduler.
func NewDebouncer(sched *Scheduler, name string, window time.Duration, fn func()) *Debouncer {
	return &Debouncer{sched: sched, name: name, window: window, fn: fn}
}

// Trigger requests a call.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending {
		return
	}
	d.pending = true
	d.sched.Schedule(d.name, d.window, d.flush)
}

// Pending reports whether a call is waiting.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Cancel drops a waiting call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = false
	d.sched.Cancel(d.name)
}

func (d *Debouncer) flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.mu.Unlock()
	d.fn()
}
