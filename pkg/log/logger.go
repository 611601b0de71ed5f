package log

import "sync"

// Logger receives protocol trace events from a session.
// Implementations must be safe for concurrent use and must not block;
// the session calls Log from the scheduler goroutine.
type Logger interface {
	Log(event Event)
}

// NoopLogger drops every event. It is the default when no trace sink is
// configured.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Recorder keeps every event in memory. The zero value is ready to use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Log appends the event.
func (r *Recorder) Log(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// LedgerActions returns the ledger actions recorded for one property key,
// oldest first.
func (r *Recorder) LedgerActions(key string) []LedgerAction {
	var out []LedgerAction
	for _, ev := range r.Events() {
		if ev.Ledger != nil && ev.Ledger.Property == key {
			out = append(out, ev.Ledger.Action)
		}
	}
	return out
}

// Commands returns the recorded command events.
func (r *Recorder) Commands() []*CommandEvent {
	var out []*CommandEvent
	for _, ev := range r.Events() {
		if ev.Command != nil {
			out = append(out, ev.Command)
		}
	}
	return out
}

// StateChanges returns the recorded transitions of one entity.
func (r *Recorder) StateChanges(entity StateEntity) []*StateChangeEvent {
	var out []*StateChangeEvent
	for _, ev := range r.Events() {
		if ev.StateChange != nil && ev.StateChange.Entity == entity {
			out = append(out, ev.StateChange)
		}
	}
	return out
}

var (
	_ Logger = NoopLogger{}
	_ Logger = (*Recorder)(nil)
)
