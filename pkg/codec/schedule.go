package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// Schedule task enabled states. ScheduleOff is a task the user switched off;
// it stays in the list and round-trips unchanged.
const (
	ScheduleOff      = 0
	ScheduleEnabled  = 1
	ScheduleDisabled = 2
	ScheduleInvalid  = 3
)

const scheduleFields = 9

// ScheduleTask is one entry of the schedule property:
//
//	id-enabled-HH:MM-repeatmask-once-mapid-suction-water-options
//
// Options is "0" on the wire when unset.
type ScheduleTask struct {
	ID      int
	Enabled int
	Time    string
	Repeats string
	Once    int
	MapID   int
	Suction int
	Water   int
	Options *string
}

// Active reports whether the task is enabled or disabled but still valid.
func (t ScheduleTask) Active() bool {
	return t.Enabled == ScheduleEnabled || t.Enabled == ScheduleDisabled
}

// Validate checks field ranges.
func (t ScheduleTask) Validate() error {
	if t.ID < 0 {
		return fmt.Errorf("schedule %d: negative id", t.ID)
	}
	if t.Enabled < ScheduleOff || t.Enabled > ScheduleInvalid {
		return fmt.Errorf("schedule %d: enabled state %d out of range", t.ID, t.Enabled)
	}
	if _, err := ParseTimeOfDay(t.Time); err != nil {
		return fmt.Errorf("schedule %d: %w", t.ID, err)
	}
	if len(t.Repeats) != 7 || strings.Trim(t.Repeats, "01") != "" {
		return fmt.Errorf("schedule %d: repeat mask %q must be 7 binary digits", t.ID, t.Repeats)
	}
	if t.Options != nil && (*t.Options == "" || *t.Options == "0" || strings.Contains(*t.Options, ";")) {
		return fmt.Errorf("schedule %d: invalid options %q", t.ID, *t.Options)
	}
	return nil
}

// ParseSchedule parses the schedule property. An empty string is an
// empty schedule.
func ParseSchedule(s string) ([]ScheduleTask, error) {
	if s == "" {
		return nil, nil
	}
	var tasks []ScheduleTask
	for i, entry := range strings.Split(s, ";") {
		t, err := parseScheduleTask(entry)
		if err != nil {
			return nil, fmt.Errorf("schedule entry %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func parseScheduleTask(s string) (ScheduleTask, error) {
	f := strings.SplitN(s, "-", scheduleFields)
	if len(f) != scheduleFields {
		return ScheduleTask{}, fmt.Errorf("expected %d fields in %q", scheduleFields, s)
	}

	var t ScheduleTask
	ints := []struct {
		field string
		dst   *int
	}{
		{f[0], &t.ID}, {f[1], &t.Enabled}, {f[4], &t.Once},
		{f[5], &t.MapID}, {f[6], &t.Suction}, {f[7], &t.Water},
	}
	for _, in := range ints {
		n, err := canonicalInt(in.field)
		if err != nil {
			return ScheduleTask{}, err
		}
		*in.dst = n
	}
	t.Time = f[2]
	t.Repeats = f[3]
	if f[8] != "0" {
		opt := f[8]
		t.Options = &opt
	}
	if err := t.Validate(); err != nil {
		return ScheduleTask{}, err
	}
	return t, nil
}

// FormatSchedule encodes tasks into the schedule property.
func FormatSchedule(tasks []ScheduleTask) string {
	parts := make([]string, len(tasks))
	for i, t := range tasks {
		opt := "0"
		if t.Options != nil {
			opt = *t.Options
		}
		parts[i] = fmt.Sprintf("%d-%d-%s-%s-%d-%d-%d-%d-%s",
			t.ID, t.Enabled, t.Time, t.Repeats, t.Once, t.MapID, t.Suction, t.Water, opt)
	}
	return strings.Join(parts, ";")
}

// canonicalInt parses a decimal integer and rejects forms that would not
// format back identically, such as leading zeros or a plus sign.
func canonicalInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}
