package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/vacsync/vacsync-go/pkg/log"
)

// FilterOptions holds the raw filter flags shared by view, filter and
// export.
type FilterOptions struct {
	SessionID string
	DeviceID  string
	Property  string
	Source    string
	Category  string
	Ledger    string
	TimeStart string
	TimeEnd   string
}

// Build converts the options to a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		SessionID: o.SessionID,
		DeviceID:  o.DeviceID,
		Property:  o.Property,
	}

	if o.Source != "" {
		s, err := ParseSourceFlag(o.Source)
		if err != nil {
			return filter, err
		}
		filter.Source = &s
	}
	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	if o.Ledger != "" {
		a, err := ParseLedgerFlag(o.Ledger)
		if err != nil {
			return filter, err
		}
		filter.Ledger = &a
	}
	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// ParseSourceFlag parses a source name (local, push, poll, timer).
func ParseSourceFlag(s string) (log.Source, error) {
	for _, src := range []log.Source{log.SourceLocal, log.SourcePush, log.SourcePoll, log.SourceTimer} {
		if strings.EqualFold(s, src.String()) {
			return src, nil
		}
	}
	return 0, fmt.Errorf("invalid source: %s (valid: local, push, poll, timer)", s)
}

// ParseCategoryFlag parses a category name.
func ParseCategoryFlag(s string) (log.Category, error) {
	for _, c := range categories {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid category: %s (valid: property, ledger, command, state, error)", s)
}

// ParseLedgerFlag parses a ledger action name such as "discard".
func ParseLedgerFlag(s string) (log.LedgerAction, error) {
	for _, a := range ledgerActions {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid ledger action: %s (valid: begin, confirm, discard, accept, restore, rollback)", s)
}

var ledgerActions = []log.LedgerAction{
	log.LedgerBegin,
	log.LedgerConfirm,
	log.LedgerDiscard,
	log.LedgerAccept,
	log.LedgerRestore,
	log.LedgerRollback,
}

var categories = []log.Category{
	log.CategoryProperty,
	log.CategoryLedger,
	log.CategoryCommand,
	log.CategoryState,
	log.CategoryError,
}
