// Package commands implements the vacsync-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/vacsync/vacsync-go/pkg/log"
)

// RunView reads the log file and prints matching events.
func RunView(path string, filter log.Filter, w io.Writer) error {
	err := log.Each(path, filter, func(event log.Event) error {
		formatEvent(w, event)
		return nil
	})
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] SOURCE CATEGORY subject
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %-5s %s %s\n",
		ts, shortenID(event.SessionID), event.Source, event.Category, subject(event))

	switch {
	case event.Property != nil:
		p := event.Property
		fmt.Fprintf(w, "  Address: %d.%d\n", p.Siid, p.Piid)
		fmt.Fprintf(w, "  Value: %s -> %s\n", orNone(p.Old), p.New)
	case event.Ledger != nil:
		formatLedgerDetails(w, event.Ledger)
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.StateChange != nil:
		sc := event.StateChange
		fmt.Fprintf(w, "  %s -> %s\n", orNone(sc.OldState), sc.NewState)
		if sc.Reason != "" {
			fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
		}
	case event.Error != nil:
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Code != nil {
			fmt.Fprintf(w, "  Code: %d\n", *event.Error.Code)
		}
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

func subject(event log.Event) string {
	switch {
	case event.Property != nil:
		return event.Property.Name
	case event.Ledger != nil:
		return event.Ledger.Action.String() + " " + event.Ledger.Property
	case event.Command != nil:
		return event.Command.Kind.String() + " " + event.Command.Name
	case event.StateChange != nil:
		return event.StateChange.Entity.String()
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

func formatLedgerDetails(w io.Writer, l *log.LedgerEvent) {
	var parts []string
	if l.Pending != "" {
		parts = append(parts, "pending="+l.Pending)
	}
	if l.Inbound != "" {
		parts = append(parts, "inbound="+l.Inbound)
	}
	if l.Previous != "" {
		parts = append(parts, "previous="+l.Previous)
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, " "))
	}
	if l.Age > 0 {
		fmt.Fprintf(w, "  Age: %s\n", l.Age)
	}
}

func formatCommandDetails(w io.Writer, c *log.CommandEvent) {
	if c.Siid != 0 {
		fmt.Fprintf(w, "  Address: %d.%d\n", c.Siid, c.Iid)
	}
	if c.Value != "" {
		fmt.Fprintf(w, "  Value: %s\n", c.Value)
	}
	if c.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *c.Code)
	}
	if c.Duration != nil {
		fmt.Fprintf(w, "  Duration: %s\n", *c.Duration)
	}
	if c.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", c.Error)
	}
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func orNone(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}
