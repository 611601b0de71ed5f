package log

import "time"

// Event represents a trace event captured by a device session.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the device session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// DeviceID is the device identifier (did).
	DeviceID string `cbor:"3,keyasint,omitempty"`

	// Model is the device model, once known.
	Model string `cbor:"4,keyasint,omitempty"`

	// Source indicates what triggered the event.
	Source Source `cbor:"5,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"6,keyasint"`

	// Type-specific payload (one of these will be set).
	Property    *PropertyEvent    `cbor:"10,keyasint,omitempty"` // Store mutations
	Ledger      *LedgerEvent      `cbor:"11,keyasint,omitempty"` // Optimistic write bookkeeping
	Command     *CommandEvent     `cbor:"12,keyasint,omitempty"` // Transport calls
	StateChange *StateChangeEvent `cbor:"13,keyasint,omitempty"` // Session state
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Errors
}

// Source indicates what triggered an event.
type Source uint8

const (
	// SourceLocal indicates a local command.
	SourceLocal Source = 0
	// SourcePush indicates a device push notification.
	SourcePush Source = 1
	// SourcePoll indicates a poll cycle.
	SourcePoll Source = 2
	// SourceTimer indicates a scheduled timer.
	SourceTimer Source = 3
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceLocal:
		return "LOCAL"
	case SourcePush:
		return "PUSH"
	case SourcePoll:
		return "POLL"
	case SourceTimer:
		return "TIMER"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryProperty indicates a property store change.
	CategoryProperty Category = 0
	// CategoryLedger indicates optimistic write bookkeeping.
	CategoryLedger Category = 1
	// CategoryCommand indicates a transport call.
	CategoryCommand Category = 2
	// CategoryState indicates a session state change.
	CategoryState Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryProperty:
		return "PROPERTY"
	case CategoryLedger:
		return "LEDGER"
	case CategoryCommand:
		return "COMMAND"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// PropertyEvent captures a single property store change.
// Values are recorded in their display form.
type PropertyEvent struct {
	// Name is the property name.
	Name string `cbor:"1,keyasint"`

	// Siid and Piid address the property on the device.
	Siid uint16 `cbor:"2,keyasint"`
	Piid uint16 `cbor:"3,keyasint"`

	// Old is the previous value (empty when absent).
	Old string `cbor:"4,keyasint,omitempty"`

	// New is the current value.
	New string `cbor:"5,keyasint"`
}

// LedgerEvent captures a step of the optimistic write protocol.
type LedgerEvent struct {
	// Property is the property name.
	Property string `cbor:"1,keyasint"`

	// Action is the ledger step.
	Action LedgerAction `cbor:"2,keyasint"`

	// Pending is the optimistically written value.
	Pending string `cbor:"3,keyasint,omitempty"`

	// Inbound is the device-reported value that was reconciled.
	Inbound string `cbor:"4,keyasint,omitempty"`

	// Previous is the value before the write.
	Previous string `cbor:"5,keyasint,omitempty"`

	// Age is the time since the write began. Stored as nanoseconds.
	Age time.Duration `cbor:"6,keyasint,omitempty"`
}

// LedgerAction identifies a ledger step.
type LedgerAction uint8

const (
	// LedgerBegin indicates an optimistic write was recorded.
	LedgerBegin LedgerAction = 0
	// LedgerConfirm indicates the device confirmed the pending value.
	LedgerConfirm LedgerAction = 1
	// LedgerDiscard indicates a conflicting inbound value was dropped.
	LedgerDiscard LedgerAction = 2
	// LedgerAccept indicates a conflicting inbound value was accepted.
	LedgerAccept LedgerAction = 3
	// LedgerRestore indicates an unconfirmed write was reverted by the sweep.
	LedgerRestore LedgerAction = 4
	// LedgerRollback indicates a failed write was reverted immediately.
	LedgerRollback LedgerAction = 5
)

// String returns the ledger action name.
func (a LedgerAction) String() string {
	switch a {
	case LedgerBegin:
		return "BEGIN"
	case LedgerConfirm:
		return "CONFIRM"
	case LedgerDiscard:
		return "DISCARD"
	case LedgerAccept:
		return "ACCEPT"
	case LedgerRestore:
		return "RESTORE"
	case LedgerRollback:
		return "ROLLBACK"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent captures a transport call and its outcome.
type CommandEvent struct {
	// Name is the command, property or action name.
	Name string `cbor:"1,keyasint"`

	// Kind distinguishes property writes, actions and fetches.
	Kind CommandKind `cbor:"2,keyasint"`

	// Siid and Iid address the property or action.
	Siid uint16 `cbor:"3,keyasint,omitempty"`
	Iid  uint16 `cbor:"4,keyasint,omitempty"`

	// Value is the written value or action parameters.
	Value string `cbor:"5,keyasint,omitempty"`

	// Code is the device result code (if a response arrived).
	Code *int `cbor:"6,keyasint,omitempty"`

	// Duration is the round-trip time. Stored as nanoseconds.
	Duration *time.Duration `cbor:"7,keyasint,omitempty"`

	// Error is the failure message, if any.
	Error string `cbor:"8,keyasint,omitempty"`
}

// CommandKind distinguishes transport calls.
type CommandKind uint8

const (
	// CommandSetProperty indicates a property write.
	CommandSetProperty CommandKind = 0
	// CommandAction indicates an action call.
	CommandAction CommandKind = 1
	// CommandFetch indicates a property batch read.
	CommandFetch CommandKind = 2
)

// String returns the command kind name.
func (k CommandKind) String() string {
	switch k {
	case CommandSetProperty:
		return "SET_PROPERTY"
	case CommandAction:
		return "ACTION"
	case CommandFetch:
		return "FETCH"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures session lifecycle and session-only state changes.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityAvailability indicates a device availability change.
	StateEntityAvailability StateEntity = 0
	// StateEntitySession indicates a session lifecycle change.
	StateEntitySession StateEntity = 1
	// StateEntityGoTo indicates a go-to phase change.
	StateEntityGoTo StateEntity = 2
	// StateEntityCleanup indicates a cleanup started/completed change.
	StateEntityCleanup StateEntity = 3
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityAvailability:
		return "AVAILABILITY"
	case StateEntitySession:
		return "SESSION"
	case StateEntityGoTo:
		return "GOTO"
	case StateEntityCleanup:
		return "CLEANUP"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors raised while talking to the device.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Code is the device result code (if applicable).
	Code *int `cbor:"2,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
