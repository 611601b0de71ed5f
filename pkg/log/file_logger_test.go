package log

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func readTrace(t *testing.T, path string) []Event {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	dec := NewDecoder(bytes.NewReader(data))
	var events []Event
	for {
		var ev Event
		err := dec.Decode(&ev)
		if errors.Is(err, io.EOF) {
			return events
		}
		if err != nil {
			t.Fatalf("decode trace: %v", err)
		}
		events = append(events, ev)
	}
}

func TestFileLoggerCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "2024", "vacuum.vlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("trace file not created: %v", err)
	}
}

func TestFileLoggerWritesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacuum.vlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger.Log(Event{
		Timestamp: time.Now(),
		SessionID: "sess-123",
		DeviceID:  "402136817",
		Source:    SourcePush,
		Category:  CategoryProperty,
		Property:  &PropertyEvent{Name: "battery_level", Siid: 3, Piid: 1, New: "100"},
	})

	// Records are flushed per event, so they are readable before Close.
	events := readTrace(t, path)
	if len(events) != 1 {
		t.Fatalf("got %d events before Close, want 1", len(events))
	}
	if events[0].Property == nil || events[0].Property.New != "100" {
		t.Errorf("property payload lost: %+v", events[0].Property)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if logger.Dropped() != 0 {
		t.Errorf("Dropped() = %d, want 0", logger.Dropped())
	}
}

func TestFileLoggerAppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacuum.vlog")

	for _, id := range []string{"sess-1", "sess-2"} {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(Event{Timestamp: time.Now(), SessionID: id, Source: SourcePoll})
		logger.Close()
	}

	events := readTrace(t, path)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].SessionID != "sess-1" || events[1].SessionID != "sess-2" {
		t.Errorf("sessions out of order: %q, %q", events[0].SessionID, events[1].SessionID)
	}
}

func TestFileLoggerConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacuum.vlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.Log(Event{Timestamp: time.Now(), Source: SourceLocal, Category: CategoryLedger,
					Ledger: &LedgerEvent{Property: "volume", Action: LedgerBegin}})
			}
		}()
	}
	wg.Wait()
	logger.Close()

	if n := len(readTrace(t, path)); n != 1000 {
		t.Errorf("got %d events, want 1000", n)
	}
}

func TestFileLoggerCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacuum.vlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{SessionID: "before"})

	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	logger.Log(Event{SessionID: "after"})

	events := readTrace(t, path)
	if len(events) != 1 || events[0].SessionID != "before" {
		t.Errorf("events after close: %v", events)
	}
}
