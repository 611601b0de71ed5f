package property

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, None()},
		{"bool", true, Bool(true)},
		{"string", "abc", String("abc")},
		{"int", 7, Int(7)},
		{"float integral", float64(42), Int(42)},
		{"json number", json.Number("13"), Int(13)},
		{"list", []any{float64(1), "x"}, String(`[1,"x"]`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestFromAnyRejectsFractions(t *testing.T) {
	_, err := FromAny(1.5)
	assert.Error(t, err)
}

func TestValueEqualComparesKind(t *testing.T) {
	assert.False(t, Int(1).Equal(Bool(true)))
	assert.False(t, Int(0).Equal(None()))
	assert.True(t, None().Equal(Value{}))
	assert.True(t, String("a").Equal(String("a")))
}

func TestValueConversions(t *testing.T) {
	n, ok := Bool(true).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(1), n)

	b, ok := Int(3).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	n, ok = String("12").AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	_, ok = Int(3).AsString()
	assert.False(t, ok)
	_, ok = None().AsInt()
	assert.False(t, ok)
}
