package ledger

import (
	"sync"
	"time"

	"github.com/vacsync/vacsync-go/pkg/property"
)

// Window defaults.
const (
	// DefaultDiscardWindow is how long conflicting inbound values are
	// treated as stale after a local write.
	DefaultDiscardWindow = 5 * time.Second

	// DefaultRestoreWindow is how long an unconfirmed write may stay
	// pending before the previous value is restored.
	DefaultRestoreWindow = 15 * time.Second
)

// Config holds the reconciliation windows.
type Config struct {
	DiscardWindow time.Duration `yaml:"discard_window"`
	RestoreWindow time.Duration `yaml:"restore_window"`
}

// DefaultConfig returns the standard windows.
func DefaultConfig() Config {
	return Config{
		DiscardWindow: DefaultDiscardWindow,
		RestoreWindow: DefaultRestoreWindow,
	}
}

// DirtyEntry records an unconfirmed local write.
type DirtyEntry struct {
	Pending   property.Value
	Previous  property.Value
	WriteTime time.Time
}

// Decision is the outcome of reconciling one inbound value.
type Decision uint8

const (
	// Untracked means no entry existed; the value applies as-is.
	Untracked Decision = iota

	// Confirmed means the inbound value matched the pending write.
	Confirmed

	// Discarded means a conflicting value arrived inside the discard
	// window and must not be applied.
	Discarded

	// Accepted means a conflicting value arrived after the discard
	// window and overrides the local write.
	Accepted
)

// Apply reports whether the inbound value should reach the store.
func (d Decision) Apply() bool { return d != Discarded }

func (d Decision) String() string {
	switch d {
	case Untracked:
		return "UNTRACKED"
	case Confirmed:
		return "CONFIRMED"
	case Discarded:
		return "DISCARDED"
	case Accepted:
		return "ACCEPTED"
	default:
		return "UNKNOWN"
	}
}

// Revert describes a value restored by Sweep or Rollback.
type Revert struct {
	ID       property.ID
	Pending  property.Value
	Restored property.Value
	Age      time.Duration
}

// Stats counts ledger outcomes since creation.
type Stats struct {
	Writes     uint64
	Confirmed  uint64
	Discarded  uint64
	Accepted   uint64
	Restored   uint64
	RolledBack uint64
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithTable replaces the property table used to detect non-reconciled
// properties.
func WithTable(t *property.Table) Option {
	return func(l *Ledger) { l.table = t }
}

// Ledger tracks dirty entries for one property store.
type Ledger struct {
	mu      sync.Mutex
	cfg     Config
	store   *property.Store
	table   *property.Table
	now     func() time.Time
	entries map[property.ID]*DirtyEntry

	// confirmed holds the time of the last confirmation per property.
	confirmed map[property.ID]time.Time
	stats     Stats
}

// New creates a ledger bound to a store.
func New(store *property.Store, cfg Config, opts ...Option) *Ledger {
	if cfg.DiscardWindow <= 0 {
		cfg.DiscardWindow = DefaultDiscardWindow
	}
	if cfg.RestoreWindow <= 0 {
		cfg.RestoreWindow = DefaultRestoreWindow
	}
	l := &Ledger{
		cfg:       cfg,
		store:     store,
		table:     property.DefaultTable(),
		now:       time.Now,
		entries:   make(map[property.ID]*DirtyEntry),
		confirmed: make(map[property.ID]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the active windows.
func (l *Ledger) Config() Config { return l.cfg }

// Tracked reports whether writes to id go through the ledger.
func (l *Ledger) Tracked(id property.ID) bool {
	return id.Valid() && !l.table.NonReconciled(id)
}

// BeginWrite applies a local write optimistically. For tracked properties
// it records a dirty entry; a write superseding an unconfirmed one keeps the
// original previous value so that a restore goes back to the last value the
// device reported.
func (l *Ledger) BeginWrite(id property.ID, v property.Value) {
	if l.Tracked(id) {
		now := l.now()
		l.mu.Lock()
		prev := l.store.Value(id)
		if e, ok := l.entries[id]; ok {
			prev = e.Previous
		}
		l.entries[id] = &DirtyEntry{Pending: v, Previous: prev, WriteTime: now}
		l.stats.Writes++
		l.mu.Unlock()
	}
	l.store.Apply(id, v)
}

// Reconcile decides what to do with an inbound value. It never touches
// the store; callers apply the value when Decision.Apply is true.
func (l *Ledger) Reconcile(id property.ID, inbound property.Value) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[id]
	if !ok {
		return Untracked
	}
	if inbound.Equal(e.Pending) {
		l.confirmed[id] = l.now()
		delete(l.entries, id)
		l.stats.Confirmed++
		return Confirmed
	}
	delete(l.entries, id)
	if l.now().Sub(e.WriteTime) < l.cfg.DiscardWindow {
		l.stats.Discarded++
		return Discarded
	}
	l.stats.Accepted++
	return Accepted
}

// Sweep drops entries older than the restore window. If the live value
// still equals the pending value the previous value is restored, which
// notifies store listeners.
func (l *Ledger) Sweep() []Revert {
	now := l.now()
	var expired []Revert

	l.mu.Lock()
	for id, e := range l.entries {
		age := now.Sub(e.WriteTime)
		if age < l.cfg.RestoreWindow {
			continue
		}
		delete(l.entries, id)
		if l.store.Value(id).Equal(e.Pending) {
			expired = append(expired, Revert{ID: id, Pending: e.Pending, Restored: e.Previous, Age: age})
			l.stats.Restored++
		}
	}
	l.mu.Unlock()

	for _, r := range expired {
		l.store.Apply(r.ID, r.Restored)
	}
	return expired
}

// Rollback undoes a failed write immediately. It reports false when no
// entry was pending.
func (l *Ledger) Rollback(id property.ID) (Revert, bool) {
	l.mu.Lock()
	e, ok := l.entries[id]
	if ok {
		delete(l.entries, id)
		l.stats.RolledBack++
	}
	l.mu.Unlock()
	if !ok {
		return Revert{}, false
	}

	r := Revert{ID: id, Pending: e.Pending, Restored: e.Previous, Age: l.now().Sub(e.WriteTime)}
	l.store.Apply(id, e.Previous)
	return r, true
}

// Entry returns a copy of the dirty entry for id.
func (l *Ledger) Entry(id property.ID) (DirtyEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		return DirtyEntry{}, false
	}
	return *e, true
}

// LastConfirmed returns when a write to id was last confirmed.
func (l *Ledger) LastConfirmed(id property.ID) (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.confirmed[id]
	return t, ok
}

// Len returns the number of dirty entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Stats returns a copy of the outcome counters.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Clear drops all entries without touching the store.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.entries)
}
