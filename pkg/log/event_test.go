package log

import "testing"

func TestSourceString(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{SourceLocal, "LOCAL"},
		{SourcePush, "PUSH"},
		{SourcePoll, "POLL"},
		{SourceTimer, "TIMER"},
		{Source(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.src.String()
		if got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryProperty, "PROPERTY"},
		{CategoryLedger, "LEDGER"},
		{CategoryCommand, "COMMAND"},
		{CategoryState, "STATE"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.cat.String()
		if got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestLedgerActionString(t *testing.T) {
	tests := []struct {
		action LedgerAction
		want   string
	}{
		{LedgerBegin, "BEGIN"},
		{LedgerConfirm, "CONFIRM"},
		{LedgerDiscard, "DISCARD"},
		{LedgerAccept, "ACCEPT"},
		{LedgerRestore, "RESTORE"},
		{LedgerRollback, "ROLLBACK"},
		{LedgerAction(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.action.String()
		if got != tt.want {
			t.Errorf("LedgerAction(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestCommandKindString(t *testing.T) {
	tests := []struct {
		kind CommandKind
		want string
	}{
		{CommandSetProperty, "SET_PROPERTY"},
		{CommandAction, "ACTION"},
		{CommandFetch, "FETCH"},
		{CommandKind(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.want {
			t.Errorf("CommandKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestStateEntityString(t *testing.T) {
	tests := []struct {
		entity StateEntity
		want   string
	}{
		{StateEntityAvailability, "AVAILABILITY"},
		{StateEntitySession, "SESSION"},
		{StateEntityGoTo, "GOTO"},
		{StateEntityCleanup, "CLEANUP"},
		{StateEntity(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.entity.String()
		if got != tt.want {
			t.Errorf("StateEntity(%d).String() = %q, want %q", tt.entity, got, tt.want)
		}
	}
}

// Values are part of the file format and must not change.
func TestCategoryValues(t *testing.T) {
	if CategoryProperty != 0 || CategoryLedger != 1 || CategoryCommand != 2 ||
		CategoryState != 3 || CategoryError != 4 {
		t.Error("Category values changed")
	}
}

func TestLedgerActionValues(t *testing.T) {
	if LedgerBegin != 0 || LedgerConfirm != 1 || LedgerDiscard != 2 ||
		LedgerAccept != 3 || LedgerRestore != 4 || LedgerRollback != 5 {
		t.Error("LedgerAction values changed")
	}
}

func TestPropertyName(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"property", Event{Property: &PropertyEvent{Name: "suction_level"}}, "suction_level"},
		{"ledger", Event{Ledger: &LedgerEvent{Property: "cleaning_mode"}}, "cleaning_mode"},
		{"set property", Event{Command: &CommandEvent{Name: "volume", Kind: CommandSetProperty}}, "volume"},
		{"action", Event{Command: &CommandEvent{Name: "start", Kind: CommandAction}}, ""},
		{"state", Event{StateChange: &StateChangeEvent{Entity: StateEntityGoTo}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropertyName(tt.event); got != tt.want {
				t.Errorf("PropertyName() = %q, want %q", got, tt.want)
			}
		})
	}
}
