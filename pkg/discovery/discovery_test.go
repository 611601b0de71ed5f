package discovery

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstance(t *testing.T) {
	tests := []struct {
		name      string
		instance  string
		wantModel string
		wantDID   string
		wantErr   bool
	}{
		{"vacuum", "dreame-vacuum-r2228o_miio402136817", "dreame.vacuum.r2228o", "402136817", false},
		{"older model", "dreame-vacuum-p2009_miio1234", "dreame.vacuum.p2009", "1234", false},
		{"dashed variant", "xiaomi-vacuum-b106-eu_miio99", "xiaomi.vacuum.b106-eu", "99", false},
		{"no did", "dreame-vacuum-r2228o_miio", "", "", true},
		{"no marker", "dreame-vacuum-r2228o", "", "", true},
		{"short model", "dreame-r2228o_miio1", "", "", true},
		{"non numeric did", "dreame-vacuum-r2228o_miioabc", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, did, err := ParseInstance(tt.instance)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInstance)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, model)
			assert.Equal(t, tt.wantDID, did)
		})
	}
}

func TestToVacuum(t *testing.T) {
	v := toVacuum("dreame-vacuum-r2228o_miio402136817", "dreame-vacuum-r2228o_miio402136817.local.", 0,
		[]string{"epoch=1", "mac=b0:4a:39:aa:bb:cc"},
		[]net.IP{net.ParseIP("192.168.1.40")})

	require.NotNil(t, v)
	assert.Equal(t, "dreame.vacuum.r2228o", v.Model)
	assert.Equal(t, "402136817", v.DeviceID)
	assert.Equal(t, uint16(DefaultPort), v.Port)
	assert.Equal(t, "B0:4A:39:AA:BB:CC", v.MAC)
	assert.Equal(t, []string{"192.168.1.40"}, v.Addresses)
	assert.Equal(t, "dreame.vacuum.r2228o did=402136817 addr=192.168.1.40", v.String())

	assert.Nil(t, toVacuum("Living Room Speaker", "", 0, nil, nil))
}

func TestAggregatorMergesInterfaces(t *testing.T) {
	agg := newAggregator(VacuumModelPrefix)
	const inst = "dreame-vacuum-r2228o_miio402136817"

	v := agg.add(inst, "h", DefaultPort, nil, []net.IP{net.ParseIP("192.168.1.40")})
	require.NotNil(t, v)

	again := agg.add(inst, "h", DefaultPort, nil, []net.IP{net.ParseIP("fe80::1"), net.ParseIP("192.168.1.40")})
	assert.Nil(t, again, "known instance is reported once")
	assert.Equal(t, []string{"192.168.1.40", "fe80::1"}, v.Addresses)

	agg.remove(inst, []net.IP{net.ParseIP("192.168.1.40")})
	assert.Equal(t, []string{"fe80::1"}, v.Addresses)

	agg.remove(inst, []net.IP{net.ParseIP("fe80::1")})
	assert.Empty(t, agg.services)

	// After it went away it is new again.
	assert.NotNil(t, agg.add(inst, "h", DefaultPort, nil, []net.IP{net.ParseIP("192.168.1.41")}))
}

func TestAggregatorFiltersModels(t *testing.T) {
	agg := newAggregator(VacuumModelPrefix)
	assert.Nil(t, agg.add("yeelink-light-color1_miio77", "h", 0, nil, nil))
	assert.NotNil(t, agg.add("dreame-vacuum-r2316_miio78", "h", 0, nil, nil))

	all := newAggregator("")
	assert.NotNil(t, all.add("yeelink-light-color1_miio77", "h", 0, nil, nil))
}

func TestStringsToTXTRecords(t *testing.T) {
	txt := StringsToTXTRecords([]string{"mac=aa", "epoch=1", "flag", ""})
	assert.Equal(t, TXTRecordMap{"mac": "aa", "epoch": "1", "flag": ""}, txt)
}

func TestStoppedBrowserReturnsClosedChannel(t *testing.T) {
	b, err := NewMDNSBrowser(DefaultBrowserConfig())
	require.NoError(t, err)
	b.Stop()

	results, err := b.Browse(context.Background())
	require.NoError(t, err)
	_, open := <-results
	assert.False(t, open)

	found, err := Collect(context.Background(), b)
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = b.Find(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNotFound)
}
