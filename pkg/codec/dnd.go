package codec

import (
	"encoding/json"
	"fmt"
)

// AllWeekdays is the weekday mask covering every day.
const AllWeekdays = 0x7F

// DNDTask is one do-not-disturb window.
type DNDTask struct {
	ID       int    `json:"id"`
	Enabled  int    `json:"en"`
	Start    string `json:"st"`
	End      string `json:"et"`
	Weekdays int    `json:"wk"`
	Settings int    `json:"ss"`
}

// IsEnabled reports whether the window is active.
func (t DNDTask) IsEnabled() bool { return t.Enabled == 1 }

// Validate checks the window bounds.
func (t DNDTask) Validate() error {
	if err := ValidateWindow(t.Start, t.End); err != nil {
		return fmt.Errorf("dnd task %d: %w", t.ID, err)
	}
	if t.Weekdays < 0 || t.Weekdays > AllWeekdays {
		return fmt.Errorf("dnd task %d: weekday mask %#x out of range", t.ID, t.Weekdays)
	}
	return nil
}

// ParseDNDTasks decodes the DND task property.
func ParseDNDTasks(s string) ([]DNDTask, error) {
	if s == "" {
		return nil, nil
	}
	var tasks []DNDTask
	if err := json.Unmarshal([]byte(s), &tasks); err != nil {
		return nil, fmt.Errorf("parse dnd tasks: %w", err)
	}
	return tasks, nil
}

// FormatDNDTasks encodes the DND task property.
func FormatDNDTasks(tasks []DNDTask) (string, error) {
	if tasks == nil {
		tasks = []DNDTask{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
