package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// StdinPath makes Open read the trace from standard input.
const StdinPath = "-"

// Filter selects trace events. Zero-valued fields match everything.
type Filter struct {
	SessionID string
	DeviceID  string
	Source    *Source
	Category  *Category

	// Property matches the property a property, ledger or set-property
	// command event refers to.
	Property string

	// Ledger keeps only ledger events with this action.
	Ledger *LedgerAction

	// TimeStart is inclusive, TimeEnd exclusive.
	TimeStart *time.Time
	TimeEnd   *time.Time
}

// Match reports whether ev passes every criterion of f.
func (f Filter) Match(ev Event) bool {
	switch {
	case f.SessionID != "" && ev.SessionID != f.SessionID,
		f.DeviceID != "" && ev.DeviceID != f.DeviceID,
		f.Source != nil && ev.Source != *f.Source,
		f.Category != nil && ev.Category != *f.Category,
		f.Property != "" && PropertyName(ev) != f.Property,
		f.Ledger != nil && (ev.Ledger == nil || ev.Ledger.Action != *f.Ledger),
		f.TimeStart != nil && ev.Timestamp.Before(*f.TimeStart),
		f.TimeEnd != nil && !ev.Timestamp.Before(*f.TimeEnd):
		return false
	}
	return true
}

// PropertyName returns the property an event refers to, or "" if none.
func PropertyName(event Event) string {
	switch {
	case event.Property != nil:
		return event.Property.Name
	case event.Ledger != nil:
		return event.Ledger.Property
	case event.Command != nil && event.Command.Kind == CommandSetProperty:
		return event.Command.Name
	}
	return ""
}

// Reader streams events out of a .vlog trace.
type Reader struct {
	closer  io.Closer
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader reads events matching filter from r.
func NewReader(r io.Reader, filter Filter) *Reader {
	return &Reader{decoder: NewDecoder(r), filter: filter}
}

// Open reads the trace file at path, or standard input for StdinPath.
func Open(path string, filter Filter) (*Reader, error) {
	if path == StdinPath {
		return NewReader(os.Stdin, filter), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(f, filter)
	r.closer = f
	return r, nil
}

// Next returns the next matching event, or io.EOF at the end of the trace.
func (r *Reader) Next() (Event, error) {
	for {
		var ev Event
		if err := r.decoder.Decode(&ev); err != nil {
			return Event{}, err
		}
		if r.filter.Match(ev) {
			return ev, nil
		}
	}
}

// Close releases the underlying file, if Open opened one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Each calls fn for every matching event in the trace at path and stops at
// the first error fn returns.
func Each(path string, filter Filter, fn func(Event) error) error {
	r, err := Open(path, filter)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}

// ReadAll loads every matching event from the trace at path.
func ReadAll(path string, filter Filter) ([]Event, error) {
	var out []Event
	err := Each(path, filter, func(ev Event) error {
		out = append(out, ev)
		return nil
	})
	return out, err
}
