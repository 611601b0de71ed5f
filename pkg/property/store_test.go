package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreApplyNotifiesOnChange(t *testing.T) {
	s := NewStore()
	var got []Change
	s.AddListener(BatteryLevel, func(c Change) { got = append(got, c) })

	_, changed := s.Apply(BatteryLevel, Int(80))
	assert.True(t, changed)
	_, changed = s.Apply(BatteryLevel, Int(80))
	assert.False(t, changed)
	s.Apply(BatteryLevel, Int(79))

	require.Len(t, got, 2)
	assert.True(t, got[0].Previous.IsNone())
	assert.True(t, got[1].Previous.Equal(Int(80)))
	assert.True(t, got[1].Current.Equal(Int(79)))
}

func TestStoreApplyBatchIsSilentUntilFired(t *testing.T) {
	s := NewStore()
	fired := 0
	s.AddGlobalListener(func(Change) { fired++ })

	changes := s.ApplyBatch([]Update{
		{ID: Status, Value: Int(2)},
		{ID: BatteryLevel, Value: Int(50)},
		{ID: Status, Value: Int(2)},
	})
	assert.Len(t, changes, 2)
	assert.Equal(t, 0, fired)
	assert.Equal(t, int64(2), s.IntOr(Status, -1))

	s.Fire(changes)
	assert.Equal(t, 2, fired)
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	s.Apply(ChildLock, Bool(true))
	c, ok := s.Remove(ChildLock)
	require.True(t, ok)
	assert.True(t, c.Current.IsNone())
	assert.False(t, s.Has(ChildLock))

	_, ok = s.Remove(ChildLock)
	assert.False(t, ok)
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Apply(Volume, Int(40))
	snap := s.Snapshot()
	snap[Volume] = Int(1)
	assert.Equal(t, int64(40), s.IntOr(Volume, 0))
	assert.Equal(t, 1, s.Len())
}
