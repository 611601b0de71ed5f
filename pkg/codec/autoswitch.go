package codec

import (
	"encoding/json"
	"fmt"
)

// AutoSwitch is one key/value pair of the auto-switch settings property.
type AutoSwitch struct {
	Key   string `json:"k"`
	Value int    `json:"v"`
}

// ParseAutoSwitch decodes either a list of pairs or a single pair.
func ParseAutoSwitch(s string) ([]AutoSwitch, error) {
	if s == "" {
		return nil, nil
	}
	data := []byte(s)
	if isJSONArray(data) {
		var list []AutoSwitch
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parse auto-switch settings: %w", err)
		}
		return list, nil
	}
	var one AutoSwitch
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("parse auto-switch setting: %w", err)
	}
	return []AutoSwitch{one}, nil
}

// FormatAutoSwitch encodes a list of pairs.
func FormatAutoSwitch(list []AutoSwitch) (string, error) {
	if list == nil {
		list = []AutoSwitch{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatAutoSwitchWrite encodes the single-pair form sent to the device.
func FormatAutoSwitchWrite(key string, value int) string {
	data, _ := json.Marshal(AutoSwitch{Key: key, Value: value})
	return string(data)
}

// AutoSwitchValue looks up a key.
func AutoSwitchValue(list []AutoSwitch, key string) (int, bool) {
	for _, p := range list {
		if p.Key == key {
			return p.Value, true
		}
	}
	return 0, false
}

// MergeAutoSwitch returns a copy of list with key set to value, appending
// the key if missing.
func MergeAutoSwitch(list []AutoSwitch, key string, value int) []AutoSwitch {
	out := make([]AutoSwitch, 0, len(list)+1)
	found := false
	for _, p := range list {
		if p.Key == key {
			p.Value = value
			found = true
		}
		out = append(out, p)
	}
	if !found {
		out = append(out, AutoSwitch{Key: key, Value: value})
	}
	return out
}
