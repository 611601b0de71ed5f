package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/vacsync/vacsync-go/pkg/log"
)

var csvHeader = []string{"timestamp", "session_id", "device_id", "source", "category", "subject", "old", "new", "code"}

// RunExport writes matching events to w as JSON lines or CSV.
func RunExport(path string, filter log.Filter, format string, w io.Writer) error {
	var write func(log.Event) error
	switch format {
	case "jsonl":
		enc := json.NewEncoder(w)
		write = func(ev log.Event) error { return enc.Encode(ev) }
	case "csv":
		cw := csv.NewWriter(w)
		defer cw.Flush()
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		write = func(ev log.Event) error { return cw.Write(csvRow(ev)) }
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	if err := log.Each(path, filter, write); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// csvRow flattens the event payload into before/after/code columns.
func csvRow(ev log.Event) []string {
	var before, after, code string
	switch {
	case ev.Property != nil:
		before, after = ev.Property.Old, ev.Property.New
	case ev.Ledger != nil:
		before, after = ev.Ledger.Previous, ev.Ledger.Pending
	case ev.Command != nil:
		after = ev.Command.Value
		code = optCode(ev.Command.Code)
	case ev.StateChange != nil:
		before, after = ev.StateChange.OldState, ev.StateChange.NewState
	case ev.Error != nil:
		after = ev.Error.Message
		code = optCode(ev.Error.Code)
	}
	return []string{
		ev.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		ev.SessionID,
		ev.DeviceID,
		ev.Source.String(),
		ev.Category.String(),
		subject(ev),
		before,
		after,
		code,
	}
}

func optCode(c *int) string {
	if c == nil {
		return ""
	}
	return strconv.Itoa(*c)
}
