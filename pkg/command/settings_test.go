package command

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacsync/vacsync-go/pkg/capability"
	"github.com/vacsync/vacsync-go/pkg/codec"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/status"
	"github.com/vacsync/vacsync-go/pkg/transport"
)

func TestSettingTableIsComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Settings() {
		def := settingTable[s]
		require.NotEmpty(t, def.name, "setting %d has no name", s)
		require.NotNil(t, def.set, "setting %s has no handler", def.name)
		assert.False(t, seen[def.name], "duplicate name %s", def.name)
		seen[def.name] = true

		parsed, ok := ParseSetting(s.String())
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}
	assert.Len(t, Settings(), int(numSettings)-1)

	_, ok := ParseSetting("warp_drive")
	assert.False(t, ok)
	assert.Equal(t, "setting(0)", SettingInvalid.String())
}

func TestSuctionRejectedWhileCruising(t *testing.T) {
	h := newHarness(t, nil, map[property.ID]property.Value{
		property.Status:         property.Int(int64(status.StatusCruisingPoint)),
		property.TaskStatus:     property.Int(int64(status.TaskStatusCruisingPoint)),
		property.ChargingStatus: property.Int(int64(status.ChargingStatusNotCharging)),
	})
	require.True(t, h.view.Cruising())

	err := h.orch.SetSetting(context.Background(), SettingSuctionLevel, "strong")

	var ia *InvalidActionError
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "set suction_level", ia.Action)
	assert.Equal(t, int64(1), h.int(property.SuctionLevel))
	assert.Equal(t, 0, h.ledger.Len())
	assert.Empty(t, h.sim.Calls())
	assert.Empty(t, h.refresh)
}

func TestInvalidValuesAreNeverSent(t *testing.T) {
	flags := []capability.Flag{capability.FillLight, capability.ChildLock}
	tests := []struct {
		name    string
		setting Setting
		value   any
	}{
		{"volume above range", SettingVolume, 101},
		{"volume below range", SettingVolume, -1},
		{"volume fractional", SettingVolume, 50.5},
		{"suction unknown name", SettingSuctionLevel, "hurricane"},
		{"suction pruned option", SettingSuctionLevel, "turbo"},
		{"bool garbage", SettingChildLock, "maybe"},
		{"bool out of range", SettingChildLock, 2},
		{"camera light too dim", SettingCameraLightBrightness, 30},
		{"cleaning mode not on model", SettingCleaningMode, "mopping_after_sweeping"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, flags, nil)
			before := h.store.Snapshot()

			err := h.orch.SetSetting(context.Background(), tt.setting, tt.value)

			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.False(t, Retryable(err))
			assert.Equal(t, before, h.store.Snapshot())
			assert.Empty(t, h.sim.Calls())
		})
	}
}

func TestUnsupportedSettingIsInvalidAction(t *testing.T) {
	h := newHarness(t, nil, nil)

	for _, s := range []Setting{SettingChildLock, SettingCleanGenius, SettingDND, SettingMopPadHumidity} {
		assert.False(t, h.orch.Supported(s), s.String())
		err := h.orch.SetSetting(context.Background(), s, 1)
		assert.ErrorIs(t, err, ErrInvalidAction, s.String())
	}
	assert.ErrorIs(t, h.orch.SetSetting(context.Background(), numSettings, 1), ErrInvalidAction)
	assert.Empty(t, h.sim.Calls())
}

func TestBoolSettingsWriteIntegers(t *testing.T) {
	h := newHarness(t, []capability.Flag{capability.ChildLock}, nil)

	require.NoError(t, h.orch.SetSetting(context.Background(), SettingChildLock, "on"))
	assert.Equal(t, int64(1), h.int(property.ChildLock))

	require.NoError(t, h.orch.SetSetting(context.Background(), SettingChildLock, false))
	assert.Equal(t, int64(0), h.int(property.ChildLock))

	sets := h.sets()
	require.Len(t, sets, 2)
	assert.Equal(t, int64(1), sets[0].Value)
	assert.Equal(t, int64(0), sets[1].Value)
}

func TestCleaningModeNeedsWaterTank(t *testing.T) {
	h := newHarness(t, nil, map[property.ID]property.Value{
		property.WaterTank: property.Int(int64(status.WaterTankNotInstalled)),
	})

	err := h.orch.SetSetting(context.Background(), SettingCleaningMode, "sweeping_and_mopping")
	assert.ErrorIs(t, err, ErrInvalidAction)

	h.store.Apply(property.WaterTank, property.Int(int64(status.WaterTankInstalled)))
	require.NoError(t, h.orch.SetSetting(context.Background(), SettingCleaningMode, "sweeping_and_mopping"))
	assert.Equal(t, status.CleaningModeSweepingAndMopping, h.view.CleaningMode())
}

func groupWord(mode, selfClean, humidity int64) property.Value {
	return property.Int(codec.Group{Mode: mode, SelfClean: selfClean, Humidity: humidity}.Combine())
}

func TestGroupSettingsRewriteOneField(t *testing.T) {
	flags := []capability.Flag{capability.SelfWashBase, capability.MopPadLifting, capability.SelfCleanArea, capability.MopCleanFrequency}
	h := newHarness(t, flags, map[property.ID]property.Value{
		property.CleaningMode: groupWord(1, 20, 2),
	})
	ctx := context.Background()

	require.NoError(t, h.orch.SetSetting(ctx, SettingCleaningMode, "sweeping_and_mopping"))
	g, ok := h.view.Group()
	require.True(t, ok)
	assert.Equal(t, codec.Group{Mode: 2, SelfClean: 20, Humidity: 2}, g)

	h.store.Apply(property.CleaningMode, groupWord(1, 20, 2))
	require.NoError(t, h.orch.SetSetting(ctx, SettingMopPadHumidity, "wet"))
	g, _ = h.view.Group()
	assert.Equal(t, codec.Group{Mode: 1, SelfClean: 20, Humidity: 3}, g)

	require.NoError(t, h.orch.SetSetting(ctx, SettingSelfCleanArea, 30))
	g, _ = h.view.Group()
	assert.Equal(t, codec.Group{Mode: 1, SelfClean: 30, Humidity: 3}, g)

	err := h.orch.SetSetting(ctx, SettingSelfCleanArea, 5)
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = h.orch.SetSetting(ctx, SettingWaterVolume, "high")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestMopCleanFrequencyRemembersInterval(t *testing.T) {
	flags := []capability.Flag{capability.SelfWashBase, capability.SelfCleanArea, capability.MopCleanFrequency}
	h := newHarness(t, flags, map[property.ID]property.Value{
		property.CleaningMode: groupWord(1, 25, 2),
	})
	ctx := context.Background()
	require.Equal(t, status.MopCleanFrequencyByArea, h.view.MopCleanFrequency())

	require.NoError(t, h.orch.SetSetting(ctx, SettingMopCleanFrequency, "by_room"))
	assert.Equal(t, status.MopCleanFrequencyByRoom, h.view.MopCleanFrequency())
	area, _ := h.view.Session().PreviousSelfClean()
	assert.Equal(t, 25, area)

	require.NoError(t, h.orch.SetSetting(ctx, SettingMopCleanFrequency, "by_area"))
	assert.Equal(t, 25, h.view.SelfCleanValue())

	err := h.orch.SetSetting(ctx, SettingMopCleanFrequency, "by_time")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestMopPadHumidityOnWetnessRobot(t *testing.T) {
	flags := []capability.Flag{capability.SelfWashBase, capability.WetnessLevel}
	h := newHarness(t, flags, map[property.ID]property.Value{
		property.CleaningMode: groupWord(1, 0, 20),
	})
	ctx := context.Background()
	require.Equal(t, status.MopPadHumidityMoist, h.view.MopPadHumidity())

	require.NoError(t, h.orch.SetSetting(ctx, SettingMopPadHumidity, "wet"))
	assert.Equal(t, 28, h.view.WetnessLevel())
	assert.Equal(t, status.MopPadHumidityWet, h.view.MopPadHumidity())

	require.NoError(t, h.orch.SetSetting(ctx, SettingWetnessLevel, 12))
	assert.Equal(t, status.MopPadHumiditySlightlyDry, h.view.MopPadHumidity())

	assert.ErrorIs(t, h.orch.SetSetting(ctx, SettingWetnessLevel, 33), ErrInvalidValue)
	assert.ErrorIs(t, h.orch.SetSetting(ctx, SettingWetnessLevel, 0), ErrInvalidValue)
}

func TestManualSettingLeavesCleanGenius(t *testing.T) {
	h := newHarness(t, []capability.Flag{capability.CleanGenius}, map[property.ID]property.Value{
		property.CleanGenius: property.Int(int64(status.CleanGeniusModeDeep)),
	})
	ctx := context.Background()
	require.True(t, h.view.CleanGeniusActive())

	require.NoError(t, h.orch.SetSetting(ctx, SettingSuctionLevel, "strong"))
	assert.False(t, h.view.CleanGeniusActive())
	prev, ok := h.view.Session().PreviousCleanGeniusMode()
	require.True(t, ok)
	assert.Equal(t, status.CleanGeniusModeDeep, prev)

	sets := h.sets()
	require.Len(t, sets, 2)
	assert.Equal(t, int64(status.CleanGeniusModeOff), sets[0].Value)
	assert.Equal(t, int64(status.SuctionLevelStrong), sets[1].Value)

	require.NoError(t, h.orch.SetSetting(ctx, SettingCleanGenius, true))
	assert.Equal(t, status.CleanGeniusModeDeep, h.view.CleanGeniusMode())
}

func TestCleanGeniusFailureKeepsManualSettingUnsent(t *testing.T) {
	h := newHarness(t, []capability.Flag{capability.CleanGenius}, map[property.ID]property.Value{
		property.CleanGenius: property.Int(int64(status.CleanGeniusModeRoutine)),
	})
	h.sim.FailSets(1)

	err := h.orch.SetSetting(context.Background(), SettingSuctionLevel, "quiet")

	assert.ErrorIs(t, err, ErrDeviceUpdateFailed)
	assert.True(t, h.view.CleanGeniusActive())
	assert.Equal(t, int64(1), h.int(property.SuctionLevel))
	assert.Len(t, h.sets(), 1)
}

func TestFailedManualSettingRestoresCleanGenius(t *testing.T) {
	h := newHarness(t, []capability.Flag{capability.CleanGenius}, map[property.ID]property.Value{
		property.CleanGenius: property.Int(int64(status.CleanGeniusModeDeep)),
	})
	h.sim.SetResultCode(property.SuctionLevel, transport.CodeNotWritable)

	err := h.orch.SetSetting(context.Background(), SettingSuctionLevel, "strong")

	require.Error(t, err)
	assert.True(t, h.view.CleanGeniusActive())
	assert.Equal(t, status.CleanGeniusModeDeep, h.view.CleanGeniusMode())
	assert.Equal(t, int64(1), h.int(property.SuctionLevel))
	_, ok := h.view.Session().PreviousCleanGeniusMode()
	assert.False(t, ok)

	sets := h.sets()
	require.Len(t, sets, 3)
	assert.Equal(t, int64(status.CleanGeniusModeOff), sets[0].Value)
	assert.Equal(t, int64(status.SuctionLevelStrong), sets[1].Value)
	assert.Equal(t, int64(status.CleanGeniusModeDeep), sets[2].Value)
	v, _ := h.sim.Value(property.CleanGenius)
	assert.Equal(t, int64(status.CleanGeniusModeDeep), v)
}

func TestNumericInputCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"int", 7, 7, true},
		{"uint8", uint8(7), 7, true},
		{"uint", uint(7), 7, true},
		{"uint64", uint64(7), 7, true},
		{"uint64 overflow", uint64(math.MaxUint64), 0, false},
		{"integral float", 7.0, 7, true},
		{"fractional float", 7.5, 0, false},
		{"float beyond int64", 1e19, 0, false},
		{"float below int64", -1e19, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"string", " 42 ", 42, true},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toInt("volume", tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuickRouteNeedsMoppingAfterSweeping(t *testing.T) {
	flags := []capability.Flag{capability.CleaningRoute, capability.MopPadLifting, capability.SelfWashBase}
	h := newHarness(t, flags, map[property.ID]property.Value{
		property.CleaningMode:  groupWord(2, 0, 2),
		property.CleaningRoute: property.Int(1),
	})
	ctx := context.Background()

	err := h.orch.SetSetting(ctx, SettingCleaningRoute, "quick")
	assert.ErrorIs(t, err, ErrInvalidAction)

	h.store.Apply(property.CleaningMode, groupWord(3, 0, 2))
	require.NoError(t, h.orch.SetSetting(ctx, SettingCleaningRoute, "quick"))
	assert.Equal(t, status.CleaningRouteQuick, h.view.CleaningRoute())
}

func TestDNDPlainProperties(t *testing.T) {
	h := newHarness(t, []capability.Flag{capability.DND}, map[property.ID]property.Value{
		property.DNDStart: property.String("22:00"),
		property.DNDEnd:   property.String("08:00"),
	})
	ctx := context.Background()

	require.NoError(t, h.orch.SetSetting(ctx, SettingDNDStart, "23:30"))
	v, _ := h.store.Str(property.DNDStart)
	assert.Equal(t, "23:30", v)

	assert.ErrorIs(t, h.orch.SetSetting(ctx, SettingDNDEnd, "23:30"), ErrInvalidValue)
	assert.ErrorIs(t, h.orch.SetSetting(ctx, SettingDNDEnd, "24:00"), ErrInvalidValue)
	assert.ErrorIs(t, h.orch.SetSetting(ctx, SettingDNDEnd, 800), ErrInvalidValue)

	require.NoError(t, h.orch.SetSetting(ctx, SettingDND, "on"))
	assert.Equal(t, int64(1), h.int(property.DND))
}
