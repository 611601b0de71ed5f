package log

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.vlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	events, err := ReadAll(path, filter)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return events
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), SessionID: "sess-1", Source: SourcePush, Category: CategoryProperty},
		{Timestamp: time.Now(), SessionID: "sess-2", Source: SourceLocal, Category: CategoryCommand},
		{Timestamp: time.Now(), SessionID: "sess-3", Source: SourcePoll, Category: CategoryState},
	}

	path := createTestLogFile(t, events)
	read := readAll(t, path, Filter{})

	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].SessionID != "sess-1" {
		t.Errorf("first event SessionID = %q, want %q", read[0].SessionID, "sess-1")
	}
	if read[2].SessionID != "sess-3" {
		t.Errorf("last event SessionID = %q, want %q", read[2].SessionID, "sess-3")
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.vlog")

	logger, _ := NewFileLogger(path)
	logger.Close()

	reader, err := Open(path, Filter{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.vlog"), Filter{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderFilterBySessionID(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), SessionID: "sess-A", Category: CategoryProperty},
		{Timestamp: time.Now(), SessionID: "sess-B", Category: CategoryProperty},
		{Timestamp: time.Now(), SessionID: "sess-A", Category: CategoryState},
		{Timestamp: time.Now(), SessionID: "sess-C", Category: CategoryProperty},
	}

	read := readAll(t, createTestLogFile(t, events), Filter{SessionID: "sess-A"})

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	for _, e := range read {
		if e.SessionID != "sess-A" {
			t.Errorf("event has SessionID=%q, want %q", e.SessionID, "sess-A")
		}
	}
}

func TestReaderFilterByCategory(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), SessionID: "sess-1", Category: CategoryProperty},
		{Timestamp: time.Now(), SessionID: "sess-2", Category: CategoryLedger},
		{Timestamp: time.Now(), SessionID: "sess-3", Category: CategoryLedger},
		{Timestamp: time.Now(), SessionID: "sess-4", Category: CategoryError},
	}

	cat := CategoryLedger
	read := readAll(t, createTestLogFile(t, events), Filter{Category: &cat})

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	for _, e := range read {
		if e.Category != CategoryLedger {
			t.Errorf("event has Category=%v, want %v", e.Category, CategoryLedger)
		}
	}
}

func TestReaderFilterByProperty(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), Category: CategoryProperty, Property: &PropertyEvent{Name: "volume", New: "50"}},
		{Timestamp: time.Now(), Category: CategoryLedger, Ledger: &LedgerEvent{Property: "volume", Action: LedgerBegin}},
		{Timestamp: time.Now(), Category: CategoryProperty, Property: &PropertyEvent{Name: "suction_level", New: "2"}},
		{Timestamp: time.Now(), Category: CategoryCommand, Command: &CommandEvent{Name: "start", Kind: CommandAction}},
	}

	read := readAll(t, createTestLogFile(t, events), Filter{Property: "volume"})

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	if read[1].Ledger == nil || read[1].Ledger.Action != LedgerBegin {
		t.Errorf("second event should be the ledger begin, got %+v", read[1])
	}
}

func TestReaderFilterByTimeRange(t *testing.T) {
	baseTime := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)

	events := []Event{
		{Timestamp: baseTime.Add(-1 * time.Hour), SessionID: "sess-1"},
		{Timestamp: baseTime, SessionID: "sess-2"},
		{Timestamp: baseTime.Add(30 * time.Minute), SessionID: "sess-3"},
		{Timestamp: baseTime.Add(2 * time.Hour), SessionID: "sess-4"},
	}

	start := baseTime.Add(-5 * time.Minute)
	end := baseTime.Add(1 * time.Hour)
	read := readAll(t, createTestLogFile(t, events), Filter{TimeStart: &start, TimeEnd: &end})

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2 (events within time range)", len(read))
	}
	if read[0].SessionID != "sess-2" {
		t.Errorf("first event SessionID = %q, want %q", read[0].SessionID, "sess-2")
	}
	if read[1].SessionID != "sess-3" {
		t.Errorf("second event SessionID = %q, want %q", read[1].SessionID, "sess-3")
	}
}

func TestReaderCombinedFilters(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), SessionID: "sess-A", DeviceID: "1", Source: SourcePush, Category: CategoryProperty},
		{Timestamp: time.Now(), SessionID: "sess-A", DeviceID: "1", Source: SourcePoll, Category: CategoryProperty},
		{Timestamp: time.Now(), SessionID: "sess-B", DeviceID: "2", Source: SourcePoll, Category: CategoryProperty},
		{Timestamp: time.Now(), SessionID: "sess-A", DeviceID: "1", Source: SourcePoll, Category: CategoryError},
	}

	src := SourcePoll
	cat := CategoryProperty
	read := readAll(t, createTestLogFile(t, events), Filter{
		DeviceID: "1",
		Source:   &src,
		Category: &cat,
	})

	if len(read) != 1 {
		t.Fatalf("got %d events, want 1", len(read))
	}
	if read[0].SessionID != "sess-A" || read[0].Source != SourcePoll || read[0].Category != CategoryProperty {
		t.Error("event doesn't match all filter criteria")
	}
}

func TestReaderFilterByLedgerAction(t *testing.T) {
	events := []Event{
		{Category: CategoryLedger, Ledger: &LedgerEvent{Property: "volume", Action: LedgerBegin}},
		{Category: CategoryLedger, Ledger: &LedgerEvent{Property: "volume", Action: LedgerDiscard}},
		{Category: CategoryProperty, Property: &PropertyEvent{Name: "volume", New: "50"}},
		{Category: CategoryLedger, Ledger: &LedgerEvent{Property: "suction_level", Action: LedgerDiscard}},
	}

	action := LedgerDiscard
	read := readAll(t, createTestLogFile(t, events), Filter{Ledger: &action})

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	if read[1].Ledger.Property != "suction_level" {
		t.Errorf("second discard is for %q", read[1].Ledger.Property)
	}
}

func TestNewReaderStreamsFromAnyReader(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, id := range []string{"sess-1", "sess-2"} {
		if err := enc.Encode(Event{SessionID: id}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	r := NewReader(&buf, Filter{SessionID: "sess-2"})
	ev, err := r.Next()
	if err != nil || ev.SessionID != "sess-2" {
		t.Fatalf("Next() = %+v, %v", ev, err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on a stream reader: %v", err)
	}
}

func TestEachStopsOnCallbackError(t *testing.T) {
	path := createTestLogFile(t, []Event{{SessionID: "a"}, {SessionID: "b"}, {SessionID: "c"}})
	stop := errors.New("stop")

	var seen int
	err := Each(path, Filter{}, func(Event) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) || seen != 2 {
		t.Errorf("Each returned %v after %d events", err, seen)
	}
}
