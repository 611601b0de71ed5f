package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vacsync/vacsync-go/pkg/property"
)

func TestParseKnownCodes(t *testing.T) {
	assert.Equal(t, StatusZoneCleaning, ParseStatus(19))
	assert.Equal(t, StatusWaterCheck, ParseStatus(1501))
	assert.Equal(t, TaskStatusCruisingPoint, ParseTaskStatus(22))
	assert.Equal(t, StateShortcut, ParseState(97))
	assert.Equal(t, ChargingStatusReturnToCharge, ParseChargingStatus(5))
	assert.Equal(t, "SEGMENT_CLEANING", ParseStatus(18).String())
}

func TestParseUnknownCodes(t *testing.T) {
	assert.Equal(t, StatusUnknown, ParseStatus(999))
	assert.Equal(t, TaskStatusUnknown, ParseTaskStatus(19))
	assert.Equal(t, ChargingStatusUnknown, ParseChargingStatus(4))
	assert.Equal(t, "UNKNOWN(-1)", StatusUnknown.String())
	assert.False(t, StatusUnknown.Known())
	assert.True(t, SuctionLevelTurbo.Known())
}

func TestLookupByName(t *testing.T) {
	s, ok := LookupSuctionLevel("turbo")
	assert.True(t, ok)
	assert.Equal(t, SuctionLevelTurbo, s)

	m, ok := LookupCleaningMode("sweeping and mopping")
	assert.True(t, ok)
	assert.Equal(t, CleaningModeSweepingAndMopping, m)

	_, ok = LookupSuctionLevel("ludicrous")
	assert.False(t, ok)
}

func TestCheckCode(t *testing.T) {
	name, ok := CheckCode(property.Status, property.Int(2))
	assert.True(t, ok)
	assert.Equal(t, "CLEANING", name)

	_, ok = CheckCode(property.Status, property.Int(77))
	assert.False(t, ok)

	_, ok = CheckCode(property.Volume, property.Int(77))
	assert.True(t, ok)
}
