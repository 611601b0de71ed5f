package log

import (
	"bytes"
	"reflect"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func durPtr(d time.Duration) *time.Duration { return &d }

// A rejected write as the session traces it: the command, the rollback and
// the error that caused it.
func rejectedWrite() []Event {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456789, time.UTC)
	base := Event{
		Timestamp: ts,
		SessionID: "abc12345-def6-7890-abcd-ef1234567890",
		DeviceID:  "402136817",
		Model:     "dreame.vacuum.r2228o",
		Source:    SourceLocal,
	}
	cmd, ledger, fail := base, base, base
	cmd.Category = CategoryCommand
	cmd.Command = &CommandEvent{Name: "suction_level", Kind: CommandSetProperty, Siid: 4, Iid: 4,
		Value: "3", Code: intPtr(-4001), Duration: durPtr(850 * time.Millisecond), Error: "rejected"}
	ledger.Timestamp = ts.Add(time.Millisecond)
	ledger.Category = CategoryLedger
	ledger.Ledger = &LedgerEvent{Property: "suction_level", Action: LedgerRollback,
		Pending: "3", Previous: "1", Age: 851 * time.Millisecond}
	fail.Timestamp = ts.Add(2 * time.Millisecond)
	fail.Category = CategoryError
	fail.Error = &ErrorEventData{Message: "set_properties rejected", Context: "suction_level", Code: intPtr(-4001)}
	return []Event{cmd, ledger, fail}
}

func TestEventCBORPreservesPayloads(t *testing.T) {
	for _, want := range rejectedWrite() {
		data, err := EncodeEvent(want)
		if err != nil {
			t.Fatalf("EncodeEvent failed: %v", err)
		}
		got, err := DecodeEvent(data)
		if err != nil {
			t.Fatalf("DecodeEvent failed: %v", err)
		}

		if !got.Timestamp.Equal(want.Timestamp) {
			t.Errorf("%s: timestamp lost precision: got %v, want %v", want.Category, got.Timestamp, want.Timestamp)
		}
		got.Timestamp, want.Timestamp = time.Time{}, time.Time{}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: decoded %+v, want %+v", want.Category, got, want)
		}
	}
}

func TestEventCBORIsDeterministic(t *testing.T) {
	ev := rejectedWrite()[0]
	a, err := EncodeEvent(ev)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	b, _ := EncodeEvent(ev)
	if !bytes.Equal(a, b) {
		t.Error("same event encoded to different bytes")
	}
}

func TestEventCBORStreamDecodes(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	events := rejectedWrite()
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i, want := range events {
		var got Event
		if err := dec.Decode(&got); err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
		if got.Category != want.Category {
			t.Errorf("event %d: category %v, want %v", i, got.Category, want.Category)
		}
	}
}

func TestEventCBORUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{
		Timestamp: time.Now(),
		SessionID: "sess-123",
		Source:    SourcePush,
		Category:  CategoryProperty,
	})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var rawMap map[uint64]any
	if err := eventDecMode.Unmarshal(data, &rawMap); err != nil {
		t.Fatalf("failed to decode as map: %v", err)
	}
	for _, key := range []uint64{1, 2, 5, 6} {
		if _, ok := rawMap[key]; !ok {
			t.Errorf("integer key %d missing", key)
		}
	}

	var stringMap map[string]any
	if err := eventDecMode.Unmarshal(data, &stringMap); err == nil && len(stringMap) > 0 {
		t.Error("encoded data contains string keys")
	}
}
