package poller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalPriority(t *testing.T) {
	now := epoch
	tests := []struct {
		name string
		in   IntervalInputs
		want time.Duration
	}{
		{"idle local", IntervalInputs{}, IntervalNormal},
		{"idle cloud", IntervalInputs{PreferCloud: true}, IntervalSlow},
		{"active", IntervalInputs{Active: true}, IntervalNormal},
		{"running", IntervalInputs{Active: true, Running: true}, IntervalFast},
		{"recent change idle", IntervalInputs{LastChange: now.Add(-10 * time.Second), PreferCloud: true}, IntervalNormal},
		{"recent change active", IntervalInputs{LastChange: now.Add(-10 * time.Second), Active: true}, IntervalFast},
		{"old change", IntervalInputs{LastChange: now.Add(-2 * time.Minute), PreferCloud: true}, IntervalSlow},
		{"fresh failure", IntervalInputs{FailureActive: true, FailingSince: now.Add(-time.Second)}, IntervalNormal},
		{"lasting failure", IntervalInputs{FailureActive: true, FailingSince: now.Add(-2 * time.Minute)}, IntervalFailing},
		{"persistent failure", IntervalInputs{FailureActive: true, FailingSince: now.Add(-10 * time.Minute)}, IntervalSlow},
		{"failure beats running", IntervalInputs{FailureActive: true, FailingSince: now.Add(-2 * time.Minute), Active: true, Running: true}, IntervalFailing},
		{"map transfer beats everything", IntervalInputs{MapTransfer: true, FailureActive: true, FailingSince: now}, IntervalMapTransfer},
		{"cleared failure ignored", IntervalInputs{FailingSince: now.Add(-time.Second), PreferCloud: true}, IntervalSlow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Now = now
			assert.Equal(t, tt.want, Interval(tt.in))
		})
	}
}
