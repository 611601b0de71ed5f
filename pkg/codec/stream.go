package codec

import (
	"encoding/json"
	"fmt"
)

// StreamStatus reports the camera stream session state.
type StreamStatus struct {
	Result    int    `json:"result"`
	Session   string `json:"session"`
	OperType  string `json:"operType"`
	Operation string `json:"operation"`
}

// Active reports whether the stream session is running.
func (s StreamStatus) Active() bool {
	return s.Result == 0 && s.OperType != "" && s.OperType != "end"
}

// ParseStreamStatus decodes a single status or a list of them.
func ParseStreamStatus(s string) ([]StreamStatus, error) {
	if s == "" {
		return nil, nil
	}
	data := []byte(s)
	if isJSONArray(data) {
		var list []StreamStatus
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parse stream status: %w", err)
		}
		return list, nil
	}
	var one StreamStatus
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("parse stream status: %w", err)
	}
	return []StreamStatus{one}, nil
}
