package log

import (
	"sync"
	"testing"
	"time"
)

func TestNoopLoggerAcceptsEveryPayload(t *testing.T) {
	var logger NoopLogger
	base := Event{Timestamp: time.Now(), SessionID: "test-session", Source: SourcePush}

	for _, ev := range []Event{
		{},
		withPayload(base, func(e *Event) { e.Property = &PropertyEvent{Name: "battery_level", New: "80"} }),
		withPayload(base, func(e *Event) { e.Ledger = &LedgerEvent{Property: "volume", Action: LedgerBegin} }),
		withPayload(base, func(e *Event) { e.Command = &CommandEvent{Name: "start", Kind: CommandAction} }),
		withPayload(base, func(e *Event) { e.Error = &ErrorEventData{Message: "timeout"} }),
	} {
		logger.Log(ev)
	}
}

func withPayload(ev Event, set func(*Event)) Event {
	set(&ev)
	return ev
}

func TestRecorderFilters(t *testing.T) {
	var r Recorder
	r.Log(Event{Ledger: &LedgerEvent{Property: "volume", Action: LedgerBegin}})
	r.Log(Event{Ledger: &LedgerEvent{Property: "suction_level", Action: LedgerBegin}})
	r.Log(Event{Command: &CommandEvent{Name: "set_volume", Kind: CommandSetProperty}})
	r.Log(Event{StateChange: &StateChangeEvent{Entity: StateEntityGoTo, NewState: "travelling"}})
	r.Log(Event{StateChange: &StateChangeEvent{Entity: StateEntityAvailability, NewState: "available"}})
	r.Log(Event{Ledger: &LedgerEvent{Property: "volume", Action: LedgerConfirm}})

	if got := r.LedgerActions("volume"); len(got) != 2 || got[0] != LedgerBegin || got[1] != LedgerConfirm {
		t.Errorf("LedgerActions(volume) = %v", got)
	}
	if got := r.Commands(); len(got) != 1 || got[0].Name != "set_volume" {
		t.Errorf("Commands() = %v", got)
	}
	if got := r.StateChanges(StateEntityGoTo); len(got) != 1 || got[0].NewState != "travelling" {
		t.Errorf("StateChanges(goto) = %v", got)
	}
	if n := len(r.Events()); n != 6 {
		t.Errorf("Events() has %d entries, want 6", n)
	}

	r.Reset()
	if n := len(r.Events()); n != 0 {
		t.Errorf("after Reset, Events() has %d entries", n)
	}
}

func TestRecorderEventsIsACopy(t *testing.T) {
	var r Recorder
	r.Log(Event{SessionID: "a"})
	events := r.Events()
	events[0].SessionID = "changed"

	if got := r.Events()[0].SessionID; got != "a" {
		t.Errorf("recorded event mutated through copy: %q", got)
	}
}

func TestRecorderConcurrentLog(t *testing.T) {
	var r Recorder
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Log(Event{Source: SourcePoll})
			}
		}()
	}
	wg.Wait()

	if n := len(r.Events()); n != 400 {
		t.Errorf("got %d events, want 400", n)
	}
}
