package codec

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrEqualWindow is returned when a time window starts where it ends.
var ErrEqualWindow = errors.New("start and end time are equal")

var timeOfDayRE = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeOfDay is an "HH:MM" wall clock time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" with two-digit fields.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayRE.MatchString(s) {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// ValidateWindow checks both ends of a window. Windows may wrap midnight
// but must not be empty.
func ValidateWindow(start, end string) error {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return err
	}
	if s == e {
		return ErrEqualWindow
	}
	return nil
}
