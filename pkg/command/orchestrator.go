package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vacsync/vacsync-go/pkg/ledger"
	"github.com/vacsync/vacsync-go/pkg/log"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/status"
	"github.com/vacsync/vacsync-go/pkg/transport"
)

// Default timing values.
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultRetries        = 2
	DefaultGoToTimeout    = 30 * time.Second
)

// class groups commands by how long the device takes to settle.
type class uint8

const (
	classSetting class = iota
	classMotion
	classTask
)

// Refresh delays after a command, indexed by class.
var (
	confirmDelay = [...]time.Duration{
		classSetting: 3 * time.Second,
		classMotion:  5 * time.Second,
		classTask:    10 * time.Second,
	}
	resyncDelay = [...]time.Duration{
		classSetting: 1 * time.Second,
		classMotion:  2 * time.Second,
		classTask:    2 * time.Second,
	}
)

// Config configures an Orchestrator.
type Config struct {
	// RequestTimeout bounds every transport call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Retries is passed to property writes.
	Retries int `yaml:"retries"`

	// GoToTimeout is how long a go-to may wait for its job to start.
	GoToTimeout time.Duration `yaml:"goto_timeout"`
}

// DefaultConfig returns the default timing.
func DefaultConfig() Config {
	return Config{
		RequestTimeout: DefaultRequestTimeout,
		Retries:        DefaultRetries,
		GoToTimeout:    DefaultGoToTimeout,
	}
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithTraceLogger sets the logger receiving command trace events.
func WithTraceLogger(logger log.Logger) Option {
	return func(o *Orchestrator) { o.trace = logger }
}

// WithRefresh sets the callback asking the owner to poll after a delay.
func WithRefresh(fn func(delay time.Duration)) Option {
	return func(o *Orchestrator) { o.refreshFn = fn }
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// WithOwner routes every local store and ledger change through run, which
// must serialize it with the other mutations of the device mirror.
// Transport calls stay outside run.
func WithOwner(run func(fn func())) Option {
	return func(o *Orchestrator) { o.owner = run }
}

// WithTable replaces the property table.
func WithTable(t *property.Table) Option {
	return func(o *Orchestrator) { o.table = t }
}

// Orchestrator validates, applies and dispatches commands for one device.
// Commands may run concurrently; the ledger keeps at most one pending
// write per property. Local changes run on the owner set by WithOwner, the
// device calls do not.
type Orchestrator struct {
	cfg       Config
	transport transport.Transport
	store     *property.Store
	ledger    *ledger.Ledger
	view      *status.View
	table     *property.Table

	logger    *slog.Logger
	trace     log.Logger
	refreshFn func(time.Duration)
	now       func() time.Time
	owner     func(fn func())

	// mu guards the go-to record.
	mu   sync.Mutex
	goTo *goToRecord
}

// New creates an orchestrator.
func New(cfg Config, t transport.Transport, store *property.Store, l *ledger.Ledger, view *status.View, opts ...Option) *Orchestrator {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.GoToTimeout <= 0 {
		cfg.GoToTimeout = DefaultGoToTimeout
	}
	o := &Orchestrator{
		cfg:       cfg,
		transport: t,
		store:     store,
		ledger:    l,
		view:      view,
		table:     property.DefaultTable(),
		now:       time.Now,
		owner:     func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// View returns the status view commands are validated against.
func (o *Orchestrator) View() *status.View { return o.view }

func (o *Orchestrator) debugLog(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

func (o *Orchestrator) refresh(d time.Duration) {
	if o.refreshFn != nil {
		o.refreshFn(d)
	}
}

func (o *Orchestrator) emit(ev log.Event) {
	if o.trace == nil {
		return
	}
	ev.Timestamp = o.now()
	o.trace.Log(ev)
}

// checkConnected fails fast before any local state changes.
func (o *Orchestrator) checkConnected(op string) error {
	if o.transport == nil || !o.transport.Connected() {
		return &DeviceUnavailableError{Action: op}
	}
	return nil
}

// write sends one property. local is what the store shows until the device
// confirms; wire is what is sent, which differs for properties the device
// accepts in a partial form.
func (o *Orchestrator) write(ctx context.Context, op string, cls class, id property.ID, local property.Value, wire any) error {
	if err := o.checkConnected(op); err != nil {
		return err
	}
	addr, ok := o.table.Address(id)
	if !ok {
		return invalidAction(op, fmt.Sprintf("%s is not addressable", id))
	}

	var prev property.Value
	o.owner(func() {
		prev = o.store.Value(id)
		o.ledger.BeginWrite(id, local)
	})
	if o.ledger.Tracked(id) {
		o.emit(log.Event{
			Category: log.CategoryLedger,
			Ledger: &log.LedgerEvent{
				Property: id.String(),
				Action:   log.LedgerBegin,
				Pending:  local.String(),
				Previous: prev.String(),
			},
		})
	}

	if err := o.setProperty(ctx, id, addr, wire); err != nil {
		o.undo([]property.Update{{ID: id, Value: prev}})
		o.refresh(resyncDelay[cls])
		o.debugLog("write failed, rolled back", "property", id, "error", err)
		return &DeviceUpdateFailedError{Action: op, Err: err}
	}
	o.refresh(confirmDelay[cls])
	return nil
}

func (o *Orchestrator) writeValue(ctx context.Context, op string, cls class, id property.ID, v property.Value) error {
	return o.write(ctx, op, cls, id, v, v.Any())
}

func (o *Orchestrator) setProperty(ctx context.Context, id property.ID, addr property.Address, value any) error {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
	defer cancel()

	start := o.now()
	results, err := o.transport.SetProperty(ctx, addr.Siid, addr.Piid, value, o.cfg.Retries)
	if err == nil {
		err = transport.CheckSet(results)
	}
	err = normalizeTimeout(err)

	ev := &log.CommandEvent{
		Name:  id.String(),
		Kind:  log.CommandSetProperty,
		Siid:  uint16(addr.Siid),
		Iid:   uint16(addr.Piid),
		Value: fmt.Sprint(value),
	}
	o.finishCommand(ev, start, err)
	return err
}

// action invokes a device action after applying the optimistic updates.
// On failure the updates are reverted.
func (o *Orchestrator) action(ctx context.Context, op string, cls class, a property.ActionID, params []transport.ActionParam, optimistic ...property.Update) error {
	if err := o.checkConnected(op); err != nil {
		return err
	}
	addr, ok := o.table.Action(a)
	if !ok {
		return invalidAction(op, fmt.Sprintf("%s is not addressable", a))
	}

	prev := o.mutate(optimistic)
	if err := o.callAction(ctx, a, addr, params); err != nil {
		o.undo(prev)
		o.refresh(resyncDelay[cls])
		o.debugLog("action failed, rolled back", "action", a, "error", err)
		return &DeviceUpdateFailedError{Action: op, Err: err}
	}
	o.refresh(confirmDelay[cls])
	return nil
}

func (o *Orchestrator) callAction(ctx context.Context, a property.ActionID, addr property.ActionAddress, params []transport.ActionParam) error {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
	defer cancel()

	start := o.now()
	res, err := o.transport.CallAction(ctx, addr.Siid, addr.Aiid, params)
	if err == nil && res.Code != transport.CodeOK {
		err = &transport.CodeError{Op: a.String(), Code: res.Code}
	}
	err = normalizeTimeout(err)

	ev := &log.CommandEvent{
		Name: a.String(),
		Kind: log.CommandAction,
		Siid: uint16(addr.Siid),
		Iid:  uint16(addr.Aiid),
	}
	if len(params) > 0 {
		ev.Value = fmt.Sprint(params)
	}
	if err == nil {
		code := transport.CodeOK
		ev.Code = &code
	}
	o.finishCommand(ev, start, err)
	return err
}

func (o *Orchestrator) finishCommand(ev *log.CommandEvent, start time.Time, err error) {
	dur := o.now().Sub(start)
	ev.Duration = &dur
	var ce *transport.CodeError
	if errors.As(err, &ce) {
		code := ce.Code
		ev.Code = &code
	}
	if err != nil {
		ev.Error = err.Error()
	}
	o.emit(log.Event{Category: log.CategoryCommand, Command: ev})
}

// mutate applies updates through the ledger and returns the previous
// values.
func (o *Orchestrator) mutate(updates []property.Update) []property.Update {
	prev := make([]property.Update, 0, len(updates))
	o.owner(func() {
		for _, u := range updates {
			prev = append(prev, property.Update{ID: u.ID, Value: o.store.Value(u.ID)})
			o.ledger.BeginWrite(u.ID, u.Value)
		}
	})
	return prev
}

// undo reverts updates in reverse order. Tracked properties go back to the
// value the ledger recorded before the first unconfirmed write.
func (o *Orchestrator) undo(prev []property.Update) {
	o.owner(func() { o.undoLocked(prev) })
}

func (o *Orchestrator) undoLocked(prev []property.Update) {
	for i := len(prev) - 1; i >= 0; i-- {
		u := prev[i]
		if r, ok := o.ledger.Rollback(u.ID); ok {
			o.emit(log.Event{
				Category: log.CategoryLedger,
				Ledger: &log.LedgerEvent{
					Property: u.ID.String(),
					Action:   log.LedgerRollback,
					Pending:  r.Pending.String(),
					Previous: r.Restored.String(),
					Age:      r.Age,
				},
			})
			continue
		}
		o.store.Apply(u.ID, u.Value)
	}
}

func normalizeTimeout(err error) error {
	if err != nil && errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, transport.ErrTimeout) {
		return fmt.Errorf("%w: %w", transport.ErrTimeout, err)
	}
	return err
}

func update(id property.ID, v int64) property.Update {
	return property.Update{ID: id, Value: property.Int(v)}
}
