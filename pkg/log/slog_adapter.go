package log

import (
	"context"
	"log/slog"
	"strings"
)

// SlogAdapter writes trace events to an slog.Logger. Routine traffic is
// logged at Debug; rollbacks and discarded pushes at Info; failures at Warn.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event with a message naming its category.
func (a *SlogAdapter) Log(event Event) {
	if !a.logger.Enabled(context.Background(), levelOf(event)) {
		return
	}

	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("source", event.Source.String()),
		slog.String("category", event.Category.String()),
	}

	if event.DeviceID != "" {
		attrs = append(attrs, slog.String("device_id", event.DeviceID))
	}
	if event.Model != "" {
		attrs = append(attrs, slog.String("model", event.Model))
	}

	switch {
	case event.Property != nil:
		attrs = append(attrs,
			slog.String("property", event.Property.Name),
			slog.String("old", event.Property.Old),
			slog.String("new", event.Property.New),
		)
	case event.Ledger != nil:
		attrs = append(attrs,
			slog.String("property", event.Ledger.Property),
			slog.String("action", event.Ledger.Action.String()),
		)
		if event.Ledger.Pending != "" {
			attrs = append(attrs, slog.String("pending", event.Ledger.Pending))
		}
		if event.Ledger.Inbound != "" {
			attrs = append(attrs, slog.String("inbound", event.Ledger.Inbound))
		}
		if event.Ledger.Previous != "" {
			attrs = append(attrs, slog.String("previous", event.Ledger.Previous))
		}
		if event.Ledger.Age > 0 {
			attrs = append(attrs, slog.Duration("age", event.Ledger.Age))
		}
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("command", event.Command.Name),
			slog.String("kind", event.Command.Kind.String()),
		)
		if event.Command.Value != "" {
			attrs = append(attrs, slog.String("value", event.Command.Value))
		}
		if event.Command.Code != nil {
			attrs = append(attrs, slog.Int("code", *event.Command.Code))
		}
		if event.Command.Duration != nil {
			attrs = append(attrs, slog.Duration("duration", *event.Command.Duration))
		}
		if event.Command.Error != "" {
			attrs = append(attrs, slog.String("error", event.Command.Error))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), levelOf(event), "trace "+strings.ToLower(event.Category.String()), attrs...)
}

func levelOf(event Event) slog.Level {
	switch {
	case event.Error != nil:
		return slog.LevelWarn
	case event.Command != nil && event.Command.Error != "":
		return slog.LevelWarn
	case event.Ledger != nil && (event.Ledger.Action == LedgerDiscard || event.Ledger.Action == LedgerRollback):
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

var _ Logger = (*SlogAdapter)(nil)
