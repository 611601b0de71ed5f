package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacsync/vacsync-go/pkg/property"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLedger(t *testing.T) (*Ledger, *property.Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := property.NewStore()
	return New(store, DefaultConfig(), WithClock(clock.Now)), store, clock
}

// reconcileInbound mirrors what a session does with pushed values.
func reconcileInbound(l *Ledger, s *property.Store, id property.ID, v property.Value) Decision {
	d := l.Reconcile(id, v)
	if d.Apply() {
		s.Apply(id, v)
	}
	return d
}

func TestStalePushInsideDiscardWindowIsDropped(t *testing.T) {
	l, s, clock := newTestLedger(t)
	s.Apply(property.CleaningMode, property.Int(0))

	l.BeginWrite(property.CleaningMode, property.Int(2))
	assert.Equal(t, int64(2), s.IntOr(property.CleaningMode, -1))

	clock.Advance(2 * time.Second)
	d := reconcileInbound(l, s, property.CleaningMode, property.Int(0))

	assert.Equal(t, Discarded, d)
	assert.Equal(t, int64(2), s.IntOr(property.CleaningMode, -1))
	assert.Equal(t, 0, l.Len())
}

func TestConflictAfterDiscardWindowIsAccepted(t *testing.T) {
	l, s, clock := newTestLedger(t)
	s.Apply(property.SuctionLevel, property.Int(1))

	l.BeginWrite(property.SuctionLevel, property.Int(3))
	clock.Advance(6 * time.Second)
	d := reconcileInbound(l, s, property.SuctionLevel, property.Int(1))

	assert.Equal(t, Accepted, d)
	assert.Equal(t, int64(1), s.IntOr(property.SuctionLevel, -1))
	assert.Equal(t, 0, l.Len())
}

func TestMatchingValueConfirms(t *testing.T) {
	l, s, clock := newTestLedger(t)
	s.Apply(property.Volume, property.Int(20))

	l.BeginWrite(property.Volume, property.Int(60))
	clock.Advance(time.Second)
	d := reconcileInbound(l, s, property.Volume, property.Int(60))

	assert.Equal(t, Confirmed, d)
	assert.Equal(t, 0, l.Len())
	at, ok := l.LastConfirmed(property.Volume)
	require.True(t, ok)
	assert.Equal(t, clock.Now(), at)

	// The write is settled: a later sweep must not revert it.
	clock.Advance(time.Minute)
	assert.Empty(t, l.Sweep())
	assert.Equal(t, int64(60), s.IntOr(property.Volume, -1))
}

func TestSweepRestoresUnconfirmedWrite(t *testing.T) {
	l, s, clock := newTestLedger(t)
	s.Apply(property.Volume, property.Int(50))

	var fired []property.Change
	s.AddListener(property.Volume, func(c property.Change) { fired = append(fired, c) })

	l.BeginWrite(property.Volume, property.Int(80))
	clock.Advance(14 * time.Second)
	assert.Empty(t, l.Sweep())

	clock.Advance(2 * time.Second)
	reverts := l.Sweep()

	require.Len(t, reverts, 1)
	assert.Equal(t, property.Volume, reverts[0].ID)
	assert.Equal(t, int64(50), s.IntOr(property.Volume, -1))
	require.Len(t, fired, 2)
	assert.True(t, fired[1].Current.Equal(property.Int(50)))
	assert.Equal(t, 0, l.Len())
}

func TestSweepKeepsValueChangedSinceWrite(t *testing.T) {
	l, s, clock := newTestLedger(t)
	s.Apply(property.Volume, property.Int(50))

	l.BeginWrite(property.Volume, property.Int(80))
	// Another local path changed the live value without going through
	// the ledger.
	s.Apply(property.Volume, property.Int(70))
	clock.Advance(16 * time.Second)

	assert.Empty(t, l.Sweep())
	assert.Equal(t, int64(70), s.IntOr(property.Volume, -1))
	assert.Equal(t, 0, l.Len())
}

func TestRollbackRestoresImmediately(t *testing.T) {
	l, s, _ := newTestLedger(t)
	s.Apply(property.ChildLock, property.Bool(false))

	l.BeginWrite(property.ChildLock, property.Bool(true))
	r, ok := l.Rollback(property.ChildLock)

	require.True(t, ok)
	assert.True(t, r.Restored.Equal(property.Bool(false)))
	b, _ := s.Bool(property.ChildLock)
	assert.False(t, b)
	assert.Equal(t, 0, l.Len())

	_, ok = l.Rollback(property.ChildLock)
	assert.False(t, ok)
}

func TestRollbackOfUnknownPreviousRemovesValue(t *testing.T) {
	l, s, _ := newTestLedger(t)

	l.BeginWrite(property.CarpetBoost, property.Bool(true))
	_, ok := l.Rollback(property.CarpetBoost)

	require.True(t, ok)
	assert.False(t, s.Has(property.CarpetBoost))
}

func TestSupersedingWriteKeepsOriginalPrevious(t *testing.T) {
	l, s, clock := newTestLedger(t)
	s.Apply(property.SuctionLevel, property.Int(0))

	l.BeginWrite(property.SuctionLevel, property.Int(1))
	clock.Advance(3 * time.Second)
	l.BeginWrite(property.SuctionLevel, property.Int(2))

	e, ok := l.Entry(property.SuctionLevel)
	require.True(t, ok)
	assert.True(t, e.Pending.Equal(property.Int(2)))
	assert.True(t, e.Previous.Equal(property.Int(0)))
	assert.Equal(t, clock.Now(), e.WriteTime)
	assert.Equal(t, 1, l.Len())
}

func TestNonReconciledBypassesLedger(t *testing.T) {
	l, s, _ := newTestLedger(t)

	l.BeginWrite(property.Status, property.Int(2))

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, int64(2), s.IntOr(property.Status, -1))
	assert.Equal(t, Untracked, l.Reconcile(property.Status, property.Int(0)))
}

func TestStatsCountOutcomes(t *testing.T) {
	l, s, clock := newTestLedger(t)

	l.BeginWrite(property.Volume, property.Int(1))
	reconcileInbound(l, s, property.Volume, property.Int(1))
	l.BeginWrite(property.Volume, property.Int(2))
	reconcileInbound(l, s, property.Volume, property.Int(9))
	l.BeginWrite(property.Volume, property.Int(3))
	clock.Advance(20 * time.Second)
	l.Sweep()

	st := l.Stats()
	assert.Equal(t, uint64(3), st.Writes)
	assert.Equal(t, uint64(1), st.Confirmed)
	assert.Equal(t, uint64(1), st.Discarded)
	assert.Equal(t, uint64(1), st.Restored)
}
