package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneBasicRobot(t *testing.T) {
	p, err := Load(BuiltinCatalog(), "dreame.vacuum.p2009", "1.0.0")
	require.NoError(t, err)
	o := p.Options()

	assert.Equal(t, []int{0, 1, 2, 3}, o.SuctionLevels)
	assert.Equal(t, []int{0, 2}, o.CleaningModes)
	assert.Equal(t, []int{1, 2, 3}, o.WaterVolumes)
	assert.Empty(t, o.MopPadHumidities)
	assert.Empty(t, o.CleaningRoutes)
	assert.Empty(t, o.MopCleanFrequencies)
	assert.Empty(t, o.CleanGeniusModes)
}

func TestPruneSelfWashBase(t *testing.T) {
	p, err := Load(BuiltinCatalog(), "dreame.vacuum.r2228o", "4.3.9_1600")
	require.NoError(t, err)
	o := p.Options()

	assert.Equal(t, []int{0, 1, 2, 3}, o.CleaningModes)
	assert.Empty(t, o.WaterVolumes)
	assert.Equal(t, []int{1, 2, 3}, o.MopPadHumidities)
	assert.Equal(t, []int{1, 2, 3, 4}, o.CleaningRoutes)
	assert.Equal(t, []int{0, 1, 2}, o.MopWashLevels)
	assert.Equal(t, []int{0, 1}, o.MopCleanFrequencies)
	assert.Equal(t, []int{0, 1, 2, 3}, o.MopPadSwings)
	assert.Equal(t, []int{0, 1, 3, 4}, o.CarpetCleanings)
	assert.Equal(t, []int{2, 3, 4}, o.DryingTimes)
}

func TestPruneSwingFollowsCleanFrequency(t *testing.T) {
	p := WithFlags("test", SelfWashBase, SelfCleanArea, MopPadSwing)
	o := p.Options()

	assert.Equal(t, []int{1}, o.MopCleanFrequencies)
	assert.Equal(t, []int{0, 1}, o.MopPadSwings)
}

func TestPruneRouteFollowsCleaningModes(t *testing.T) {
	p := WithFlags("test", CleaningRoute, SelfWashBase)
	assert.Equal(t, []int{1, 2}, p.Options().CleaningRoutes)

	p = WithFlags("test", CleaningRoute, SegmentSlowCleanRoute, MopPadLifting)
	assert.Equal(t, []int{1, 2, 3, 4}, p.Options().CleaningRoutes)
}

func TestOptionsAreCopied(t *testing.T) {
	p := WithFlags("test", LidarNavigation)
	o := p.Options()
	o.SuctionLevels[0] = 99
	assert.Equal(t, 0, p.Options().SuctionLevels[0])
}
