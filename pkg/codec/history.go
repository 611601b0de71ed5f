package codec

import (
	"encoding/json"
	"fmt"
	"time"
)

// Cleaning history record fields, keyed by piid.
const (
	historyStartTime    = 1
	historyDuration     = 2
	historyArea         = 3
	historyCompleted    = 4
	historySuction      = 5
	historyCleaningMode = 6
	historyWater        = 7
	historyStatus       = 8
)

// HistoryRecord is one past cleaning job.
type HistoryRecord struct {
	Start        time.Time
	Duration     time.Duration
	Area         int
	Completed    bool
	Suction      int
	CleaningMode int
	Water        int
	Status       int
}

type historyField struct {
	Piid  int     `json:"piid"`
	Value flexInt `json:"value"`
}

// ParseHistory decodes the cleaning history property: a list of records,
// each a list of piid/value pairs. Unknown piids are ignored.
func ParseHistory(s string) ([]HistoryRecord, error) {
	if s == "" {
		return nil, nil
	}
	var raw [][]historyField
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("parse cleaning history: %w", err)
	}
	out := make([]HistoryRecord, 0, len(raw))
	for _, fields := range raw {
		var r HistoryRecord
		for _, f := range fields {
			v := int64(f.Value)
			switch f.Piid {
			case historyStartTime:
				r.Start = time.Unix(v, 0).UTC()
			case historyDuration:
				r.Duration = time.Duration(v) * time.Minute
			case historyArea:
				r.Area = int(v)
			case historyCompleted:
				r.Completed = v != 0
			case historySuction:
				r.Suction = int(v)
			case historyCleaningMode:
				r.CleaningMode = int(v)
			case historyWater:
				r.Water = int(v)
			case historyStatus:
				r.Status = int(v)
			}
		}
		out = append(out, r)
	}
	return out, nil
}
