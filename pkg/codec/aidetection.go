package codec

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// AI detection keys and their bit in the mask form.
var aiDetectionBits = map[string]int64{
	"obstacle":         1 << 0,
	"obstacle_picture": 1 << 1,
	"pet":              1 << 2,
	"human":            1 << 3,
	"furniture":        1 << 4,
	"fluid":            1 << 5,
}

// AIDetection holds the AI detection toggles. Older firmware reports a
// bitmask, newer firmware a JSON object of booleans.
type AIDetection struct {
	Mask   int64
	Object map[string]bool
}

// IsObject reports whether the value uses the object form.
func (a AIDetection) IsObject() bool { return a.Object != nil }

// ParseAIDetection decodes either form. A numeric string is a mask.
func ParseAIDetection(s string) (AIDetection, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return AIDetection{Mask: n}, nil
	}
	var obj map[string]bool
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return AIDetection{}, fmt.Errorf("parse ai detection: %w", err)
	}
	if obj == nil {
		obj = map[string]bool{}
	}
	return AIDetection{Object: obj}, nil
}

// Enabled reports whether a detection toggle is on.
func (a AIDetection) Enabled(key string) bool {
	if a.IsObject() {
		return a.Object[key]
	}
	bit, ok := aiDetectionBits[key]
	return ok && a.Mask&bit != 0
}

// Set returns a copy with one toggle changed.
func (a AIDetection) Set(key string, on bool) (AIDetection, error) {
	if a.IsObject() {
		obj := maps.Clone(a.Object)
		obj[key] = on
		return AIDetection{Object: obj}, nil
	}
	bit, ok := aiDetectionBits[key]
	if !ok {
		return AIDetection{}, fmt.Errorf("unknown ai detection key %q", key)
	}
	if on {
		return AIDetection{Mask: a.Mask | bit}, nil
	}
	return AIDetection{Mask: a.Mask &^ bit}, nil
}

// ObjectJSON encodes the object form with sorted keys.
func (a AIDetection) ObjectJSON() string {
	data, _ := json.Marshal(a.Object)
	return string(data)
}

// AIDetectionKeys returns the keys known to the mask form.
func AIDetectionKeys() []string {
	return slices.Sorted(maps.Keys(aiDetectionBits))
}
