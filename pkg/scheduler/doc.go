// Package scheduler runs named, cancellable timers.
//
// Each name holds at most one pending timer. Scheduling a name again
// replaces the pending timer, and a generation number guards against a
// replaced timer firing late. Cancel is idempotent. Callbacks run one at a
// time, so timer-driven work never overlaps.
//
// The clock is injectable. ManualClock fires timers only when advanced,
// which makes poll intervals, ledger sweeps and debouncing testable
// without sleeping.
package scheduler
