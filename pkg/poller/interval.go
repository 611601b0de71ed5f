package poller

import "time"

// Poll intervals.
const (
	IntervalMapTransfer = 2 * time.Second
	IntervalFast        = 3 * time.Second
	IntervalNormal      = 5 * time.Second
	IntervalFailing     = 10 * time.Second
	IntervalSlow        = 30 * time.Second
)

// Age limits for the failure and change tiers.
const (
	RecentChange      = 60 * time.Second
	recentFailure     = 60 * time.Second
	persistentFailure = 5 * time.Minute
)

// IntervalInputs is the state the poll interval is derived from. A zero
// time means the event never happened. FailingSince is the first failure of
// the current streak, so a device that stays unreachable backs off.
type IntervalInputs struct {
	Now           time.Time
	MapTransfer   bool
	FailingSince  time.Time
	FailureActive bool
	LastChange    time.Time
	Active        bool
	Running       bool
	PreferCloud   bool
}

// Interval picks the delay before the next poll. Rules are checked in
// priority order and the first match wins.
func Interval(in IntervalInputs) time.Duration {
	switch {
	case in.MapTransfer:
		return IntervalMapTransfer
	case in.FailureActive && !in.FailingSince.IsZero():
		switch since := in.Now.Sub(in.FailingSince); {
		case since < recentFailure:
			return IntervalNormal
		case since < persistentFailure:
			return IntervalFailing
		default:
			return IntervalSlow
		}
	case !in.LastChange.IsZero() && in.Now.Sub(in.LastChange) < RecentChange:
		if in.Active {
			return IntervalFast
		}
		return IntervalNormal
	case in.Active:
		if in.Running {
			return IntervalFast
		}
		return IntervalNormal
	case in.PreferCloud:
		return IntervalSlow
	default:
		return IntervalNormal
	}
}
