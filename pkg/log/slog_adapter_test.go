package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newJSONAdapter(buf *bytes.Buffer) *SlogAdapter {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogAdapter(slog.New(handler))
}

func parseEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	output := buf.String()
	if output == "" {
		t.Fatal("no output produced")
	}
	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return logEntry
}

func TestSlogAdapterLogsPropertyEvent(t *testing.T) {
	var buf bytes.Buffer
	adapter := newJSONAdapter(&buf)

	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "sess-123",
		DeviceID:  "987654321",
		Source:    SourcePush,
		Category:  CategoryProperty,
		Property: &PropertyEvent{
			Name: "suction_level",
			Siid: 4,
			Piid: 4,
			Old:  "1",
			New:  "2",
		},
	})

	logEntry := parseEntry(t, &buf)

	if logEntry["session_id"] != "sess-123" {
		t.Errorf("session_id: got %v, want %q", logEntry["session_id"], "sess-123")
	}
	if logEntry["source"] != "PUSH" {
		t.Errorf("source: got %v, want %q", logEntry["source"], "PUSH")
	}
	if logEntry["device_id"] != "987654321" {
		t.Errorf("device_id: got %v, want %q", logEntry["device_id"], "987654321")
	}
	if logEntry["property"] != "suction_level" {
		t.Errorf("property: got %v, want %q", logEntry["property"], "suction_level")
	}
	if logEntry["new"] != "2" {
		t.Errorf("new: got %v, want %q", logEntry["new"], "2")
	}
}

func TestSlogAdapterLogsCommandEvent(t *testing.T) {
	var buf bytes.Buffer
	adapter := newJSONAdapter(&buf)

	code := -4002
	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "sess-456",
		Source:    SourceLocal,
		Category:  CategoryCommand,
		Command: &CommandEvent{
			Name:  "volume",
			Kind:  CommandSetProperty,
			Value: "80",
			Code:  &code,
		},
	})

	logEntry := parseEntry(t, &buf)

	if logEntry["command"] != "volume" {
		t.Errorf("command: got %v, want %q", logEntry["command"], "volume")
	}
	if logEntry["kind"] != "SET_PROPERTY" {
		t.Errorf("kind: got %v, want %q", logEntry["kind"], "SET_PROPERTY")
	}
	if logEntry["code"] != float64(-4002) {
		t.Errorf("code: got %v, want %v", logEntry["code"], -4002)
	}
}

func TestSlogAdapterLogsLedgerEvent(t *testing.T) {
	var buf bytes.Buffer
	adapter := newJSONAdapter(&buf)

	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "sess-789",
		Source:    SourceTimer,
		Category:  CategoryLedger,
		Ledger: &LedgerEvent{
			Property: "cleaning_mode",
			Action:   LedgerRestore,
			Pending:  "2",
			Previous: "0",
		},
	})

	logEntry := parseEntry(t, &buf)

	if logEntry["action"] != "RESTORE" {
		t.Errorf("action: got %v, want %q", logEntry["action"], "RESTORE")
	}
	if logEntry["previous"] != "0" {
		t.Errorf("previous: got %v, want %q", logEntry["previous"], "0")
	}
	if _, ok := logEntry["inbound"]; ok {
		t.Error("empty inbound should be omitted")
	}
}

func TestSlogAdapterIncludesSessionID(t *testing.T) {
	var buf bytes.Buffer
	adapter := newJSONAdapter(&buf)

	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "abc12345-def6-7890",
		Source:    SourcePoll,
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   StateEntityAvailability,
			NewState: "unavailable",
		},
	})

	output := buf.String()
	if !strings.Contains(output, "abc12345-def6-7890") {
		t.Error("output does not contain session ID")
	}
}

func TestSlogAdapterInterfaceSatisfaction(t *testing.T) {
	var _ Logger = (*SlogAdapter)(nil)
}

func TestSlogAdapterLevels(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		level string
		msg   string
	}{
		{"poll", Event{Category: CategoryProperty, Property: &PropertyEvent{Name: "volume"}}, "DEBUG", "trace property"},
		{"discard", Event{Category: CategoryLedger, Ledger: &LedgerEvent{Property: "volume", Action: LedgerDiscard}}, "INFO", "trace ledger"},
		{"confirm", Event{Category: CategoryLedger, Ledger: &LedgerEvent{Property: "volume", Action: LedgerConfirm}}, "DEBUG", "trace ledger"},
		{"failed write", Event{Category: CategoryCommand, Command: &CommandEvent{Name: "volume", Kind: CommandSetProperty, Error: "timeout"}}, "WARN", "trace command"},
		{"error", Event{Category: CategoryError, Error: &ErrorEventData{Message: "no response"}}, "WARN", "trace error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newJSONAdapter(&buf).Log(tt.event)
			entry := parseEntry(t, &buf)
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
			if entry["msg"] != tt.msg {
				t.Errorf("msg = %v, want %s", entry["msg"], tt.msg)
			}
		})
	}
}

func TestSlogAdapterSkipsDisabledLevels(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{Category: CategoryProperty, Property: &PropertyEvent{Name: "volume"}})
	if buf.Len() != 0 {
		t.Errorf("debug trace written at info level: %s", buf.String())
	}
	adapter.Log(Event{Category: CategoryError, Error: &ErrorEventData{Message: "no response"}})
	if !strings.Contains(buf.String(), "no response") {
		t.Errorf("warning trace missing: %s", buf.String())
	}
}
