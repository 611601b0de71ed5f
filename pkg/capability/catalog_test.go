package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinProfile(t *testing.T) {
	p, err := Load(BuiltinCatalog(), "dreame.vacuum.r2228o", "4.3.9_1600")
	require.NoError(t, err)

	assert.Equal(t, "L10s Ultra", p.Name)
	assert.True(t, p.Has(SelfWashBase))
	assert.True(t, p.Has(MopPadLifting))
	assert.True(t, p.Has(CleanGenius))
	assert.True(t, p.Has(MopPadSwing))
	assert.False(t, p.Has(CameraStreaming))
	assert.Equal(t, Range{Min: 10, Max: 35}, p.SelfCleanArea)
	assert.Equal(t, Range{Min: 1, Max: 32}, p.WetnessLevel)
}

func TestFlagRequiresMinimumFirmware(t *testing.T) {
	p, err := Load(BuiltinCatalog(), "dreame.vacuum.r2228o", "4.3.9_1172")
	require.NoError(t, err)

	assert.False(t, p.Has(CleanGenius), "cleangenius needs 4.3.9_1200")
	assert.False(t, p.Has(MopPadSwing), "mop pad swing needs 4.3.9_1500")
	assert.True(t, p.Has(DNDTask))
	assert.True(t, p.Has(SelfWashBase))
}

func TestUnsupportedDevice(t *testing.T) {
	_, err := Load(BuiltinCatalog(), "dreame.vacuum.unknown", "1.0.0")
	assert.ErrorIs(t, err, ErrUnsupportedDevice)

	_, err = Load(BuiltinCatalog(), "dreame.vacuum.r9999", "1.0.0")
	assert.ErrorIs(t, err, ErrUnsupportedDevice)
}

func TestCatalogRoundTrip(t *testing.T) {
	c := &Catalog{
		Flags:  []FlagSpec{{Name: "child_lock", Bit: 3}, {Name: "dnd", Bit: 65, MinFirmware: "2.0"}},
		Models: map[string]ModelSpec{"test.model": {Bitset: "20000000000000008"}},
	}
	blob, err := EncodeCatalog(c)
	require.NoError(t, err)

	p, err := Load(blob, "test.model", "2.0.0_1")
	require.NoError(t, err)
	assert.True(t, p.Has(ChildLock))
	assert.True(t, p.Has(DND))

	p, err = Load(blob, "test.model", "1.9.9")
	require.NoError(t, err)
	assert.True(t, p.Has(ChildLock))
	assert.False(t, p.Has(DND))
}

func TestDecodeCatalogRejectsGarbage(t *testing.T) {
	_, err := DecodeCatalog([]byte("not base64!"))
	assert.Error(t, err)

	_, err = DecodeCatalog([]byte("aGVsbG8="))
	assert.Error(t, err)
}

func TestNilProfileHasNothing(t *testing.T) {
	var p *Profile
	assert.False(t, p.Has(SelfWashBase))
	assert.Empty(t, p.Flags())
	assert.Empty(t, p.Options().SuctionLevels)
}
