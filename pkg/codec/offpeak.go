package codec

import (
	"encoding/json"
	"fmt"
)

// OffPeakCharging is the off-peak charging window.
type OffPeakCharging struct {
	Enabled bool   `json:"enable"`
	Start   string `json:"startTime"`
	End     string `json:"endTime"`
}

// Validate checks the window bounds.
func (o OffPeakCharging) Validate() error {
	return ValidateWindow(o.Start, o.End)
}

// ParseOffPeakCharging decodes the off-peak charging property.
func ParseOffPeakCharging(s string) (OffPeakCharging, error) {
	var o OffPeakCharging
	if err := json.Unmarshal([]byte(s), &o); err != nil {
		return OffPeakCharging{}, fmt.Errorf("parse off-peak charging: %w", err)
	}
	return o, nil
}

// Format encodes the off-peak charging property.
func (o OffPeakCharging) Format() (string, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
