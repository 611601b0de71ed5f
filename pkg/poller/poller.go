package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vacsync/vacsync-go/pkg/ledger"
	"github.com/vacsync/vacsync-go/pkg/log"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/scheduler"
	"github.com/vacsync/vacsync-go/pkg/status"
	"github.com/vacsync/vacsync-go/pkg/transport"
)

// Defaults.
const (
	DefaultChunkSize        = 15
	DefaultFailureThreshold = 3
	DefaultDebounceWindow   = 100 * time.Millisecond
	DefaultRequestTimeout   = 10 * time.Second
)

// Scheduler timer names.
const (
	timerPoll   = "poll"
	timerChange = "change"
)

var ledgerActions = map[ledger.Decision]log.LedgerAction{
	ledger.Confirmed: log.LedgerConfirm,
	ledger.Discarded: log.LedgerDiscard,
	ledger.Accepted:  log.LedgerAccept,
}

// ErrBusy is returned when a cycle is requested while one is running.
var ErrBusy = errors.New("poll cycle already running")

// Config configures a Poller.
type Config struct {
	// ChunkSize caps the number of properties per request.
	ChunkSize int `yaml:"chunk_size"`

	// PreferCloud selects the slow idle interval.
	PreferCloud bool `yaml:"prefer_cloud"`

	// FailureThreshold is the number of consecutive failed cycles after
	// which the device is unavailable.
	FailureThreshold int `yaml:"failure_threshold"`

	// DebounceWindow coalesces change notifications.
	DebounceWindow time.Duration `yaml:"debounce_window"`

	// RequestTimeout bounds each fetch request.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultConfig returns the default poller configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize:        DefaultChunkSize,
		FailureThreshold: DefaultFailureThreshold,
		DebounceWindow:   DefaultDebounceWindow,
		RequestTimeout:   DefaultRequestTimeout,
	}
}

// Ticker runs confirmation checks after each cycle.
type Ticker interface {
	Tick(ctx context.Context) error
}

// Option configures a Poller.
type Option func(*Poller)

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Poller) { p.logger = logger }
}

// WithTraceLogger sets the logger receiving property and ledger events.
func WithTraceLogger(logger log.Logger) Option {
	return func(p *Poller) { p.trace = logger }
}

// WithTicker sets the confirmation checks run after each cycle.
func WithTicker(t Ticker) Option {
	return func(p *Poller) { p.ticker = t }
}

// WithTable replaces the property table.
func WithTable(t *property.Table) Option {
	return func(p *Poller) { p.table = t }
}

// WithProperties limits polling to ids.
func WithProperties(ids []property.ID) Option {
	return func(p *Poller) { p.ids = ids }
}

// OnChange sets the debounced callback run after store changes.
func OnChange(fn func()) Option {
	return func(p *Poller) { p.onChange = fn }
}

// OnUnavailable sets the callback run when the device becomes unavailable.
func OnUnavailable(fn func(error)) Option {
	return func(p *Poller) { p.onUnavailable = fn }
}

// OnAvailable sets the callback run when the device recovers.
func OnAvailable(fn func()) Option {
	return func(p *Poller) { p.onAvailable = fn }
}

// Poller polls one device.
type Poller struct {
	cfg       Config
	did       string
	transport transport.Transport
	table     *property.Table
	store     *property.Store
	ledger    *ledger.Ledger
	view      *status.View
	sched     *scheduler.Scheduler
	ticker    Ticker
	ids       []property.ID
	changed   *scheduler.Debouncer

	logger        *slog.Logger
	trace         log.Logger
	onChange      func()
	onUnavailable func(error)
	onAvailable   func()

	// running is the re-entrancy guard for Cycle.
	running atomic.Bool

	mu          sync.Mutex
	ctx         context.Context
	failures    int
	lastFailure time.Time
	// failingSince is the first failure of the current streak.
	failingSince time.Time
	lastChange   time.Time
	lastErr      error
	unavailable  bool
	cycles       uint64
}

// New creates a poller. Timers run on sched.
func New(cfg Config, did string, t transport.Transport, store *property.Store, l *ledger.Ledger, view *status.View, sched *scheduler.Scheduler, opts ...Option) *Poller {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = DefaultFailureThreshold
	}
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = DefaultDebounceWindow
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	p := &Poller{
		cfg:       cfg,
		did:       did,
		transport: t,
		table:     property.DefaultTable(),
		store:     store,
		ledger:    l,
		view:      view,
		sched:     sched,
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ids == nil {
		p.ids = property.All()
	}
	p.changed = scheduler.NewDebouncer(sched, timerChange, cfg.DebounceWindow, p.notifyChange)
	return p
}

func (p *Poller) debugLog(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Poller) emit(ev log.Event) {
	if p.trace == nil {
		return
	}
	ev.Timestamp = p.sched.Now()
	p.trace.Log(ev)
}

// ---------------------------------------------------------------------------
// Scheduling
// ---------------------------------------------------------------------------

// Start schedules the first cycle immediately. Later cycles follow at the
// derived interval until Stop or until ctx is done.
func (p *Poller) Start(ctx context.Context) {
	p.StartAfter(ctx, 0)
}

// StartAfter is Start with the first cycle delayed by d.
func (p *Poller) StartAfter(ctx context.Context, d time.Duration) {
	p.mu.Lock()
	p.ctx = ctx
	p.mu.Unlock()
	p.sched.Schedule(timerPoll, d, p.poll)
}

// Stop cancels the pending cycle and any pending change notification.
// Calling it more than once is safe.
func (p *Poller) Stop() {
	p.sched.Cancel(timerPoll)
	p.changed.Cancel()
}

// RefreshIn pulls the next cycle forward to at most d from now.
func (p *Poller) RefreshIn(d time.Duration) {
	p.sched.ScheduleEarlier(timerPoll, d, p.poll)
}

// Scheduled reports when the next cycle is due.
func (p *Poller) Scheduled() (time.Time, bool) {
	return p.sched.Deadline(timerPoll)
}

func (p *Poller) poll() {
	p.mu.Lock()
	ctx := p.ctx
	p.mu.Unlock()
	if ctx.Err() != nil {
		return
	}

	if err := p.Cycle(ctx); err != nil && !errors.Is(err, ErrBusy) {
		p.debugLog("poll cycle failed", "error", err)
	}
	if ctx.Err() != nil {
		return
	}
	// A refresh requested during the cycle may already be pending sooner.
	p.sched.ScheduleEarlier(timerPoll, p.NextInterval(), p.poll)
}

// NextInterval derives the delay before the next cycle from the current
// state.
func (p *Poller) NextInterval() time.Duration {
	p.mu.Lock()
	in := IntervalInputs{
		Now:           p.sched.Now(),
		FailingSince:  p.failingSince,
		FailureActive: p.failures > 0,
		LastChange:    p.lastChange,
		PreferCloud:   p.cfg.PreferCloud,
	}
	p.mu.Unlock()

	if p.view != nil {
		in.MapTransfer = p.view.MapBackupInProgress()
		in.Active = p.view.Active()
		in.Running = p.view.Running()
	}
	return Interval(in)
}

// ---------------------------------------------------------------------------
// Cycle
// ---------------------------------------------------------------------------

// Cycle runs one poll: fetch, reconcile, sweep and confirmation checks.
// The sweep and confirmation checks run even when the fetch fails, so
// unconfirmed writes are restored while the device is unreachable. It
// returns ErrBusy if another cycle is in progress.
func (p *Poller) Cycle(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer p.running.Store(false)

	updates, err := p.Fetch(ctx, p.ids)
	if err != nil {
		p.recordFailure(err)
	} else {
		p.recordSuccess()
		p.Ingest(log.SourcePoll, updates)
	}
	p.sweep()

	if p.ticker != nil {
		if err := p.ticker.Tick(ctx); err != nil {
			p.debugLog("confirmation checks failed", "error", err)
		}
	}

	p.mu.Lock()
	p.cycles++
	p.mu.Unlock()
	return err
}

// Fetch reads ids in chunks of at most ChunkSize. Properties the device
// reports with a non-zero code are skipped. A transport error aborts the
// fetch.
func (p *Poller) Fetch(ctx context.Context, ids []property.ID) ([]property.Update, error) {
	reqs := make([]transport.PropertyRequest, 0, len(ids))
	for _, id := range ids {
		addr, ok := p.table.Address(id)
		if !ok {
			continue
		}
		reqs = append(reqs, transport.PropertyRequest{DID: p.did, Siid: addr.Siid, Piid: addr.Piid})
	}

	var updates []property.Update
	for start := 0; start < len(reqs); start += p.cfg.ChunkSize {
		end := min(start+p.cfg.ChunkSize, len(reqs))
		results, err := p.fetchChunk(ctx, reqs[start:end])
		if err != nil {
			return nil, fmt.Errorf("fetch properties %d-%d: %w", start, end-1, err)
		}
		for _, r := range results {
			if u, ok := p.decode(r); ok {
				updates = append(updates, u)
			}
		}
	}
	return updates, nil
}

func (p *Poller) fetchChunk(ctx context.Context, reqs []transport.PropertyRequest) ([]transport.PropertyResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.RequestTimeout)
	defer cancel()

	start := p.sched.Now()
	results, err := p.transport.GetProperties(ctx, reqs)
	ev := &log.CommandEvent{
		Name:  "get_properties",
		Kind:  log.CommandFetch,
		Value: fmt.Sprintf("%d properties", len(reqs)),
	}
	dur := p.sched.Now().Sub(start)
	ev.Duration = &dur
	if err != nil {
		ev.Error = err.Error()
	}
	p.emit(log.Event{Source: log.SourcePoll, Category: log.CategoryCommand, Command: ev})
	return results, err
}

func (p *Poller) decode(r transport.PropertyResult) (property.Update, bool) {
	id, ok := p.table.Lookup(r.Siid, r.Piid)
	if !ok {
		return property.Update{}, false
	}
	if r.Code != transport.CodeOK {
		// Unavailable on this model or right now. Not an error.
		return property.Update{}, false
	}
	v, err := property.FromAny(r.Value)
	if err != nil {
		p.debugLog("undecodable property value", "property", id, "value", r.Value, "error", err)
		return property.Update{}, false
	}
	return property.Update{ID: id, Value: v}, true
}

// Ingest reconciles inbound values against pending writes and applies the
// accepted ones. Listeners fire once for the whole batch. It returns the
// effective changes.
func (p *Poller) Ingest(src log.Source, updates []property.Update) []property.Change {
	var changes []property.Change
	p.sched.Mutate(func() {
		accepted := make([]property.Update, 0, len(updates))
		for _, u := range updates {
			if name, known := status.CheckCode(u.ID, u.Value); !known {
				p.debugLog("unknown device code", "property", u.ID, "value", u.Value, "decoded", name)
			}
			d := p.ledger.Reconcile(u.ID, u.Value)
			if d != ledger.Untracked {
				p.emitReconcile(src, u, d)
			}
			if d.Apply() {
				accepted = append(accepted, u)
			}
		}

		changes = p.store.ApplyBatch(accepted)
		for _, c := range changes {
			p.emitChange(src, c)
		}
		p.store.Fire(changes)
	})
	if len(changes) > 0 {
		p.markChanged()
	}
	return changes
}

func (p *Poller) emitReconcile(src log.Source, u property.Update, d ledger.Decision) {
	if d == ledger.Discarded {
		p.debugLog("stale value discarded", "property", u.ID, "value", u.Value)
	}
	p.emit(log.Event{
		Source:   src,
		Category: log.CategoryLedger,
		Ledger: &log.LedgerEvent{
			Property: u.ID.String(),
			Action:   ledgerActions[d],
			Inbound:  u.Value.String(),
		},
	})
}

func (p *Poller) emitChange(src log.Source, c property.Change) {
	addr, _ := p.table.Address(c.ID)
	ev := &log.PropertyEvent{
		Name: c.ID.String(),
		Siid: uint16(addr.Siid),
		Piid: uint16(addr.Piid),
		New:  c.Current.String(),
	}
	if !c.Previous.IsNone() {
		ev.Old = c.Previous.String()
	}
	p.emit(log.Event{Source: src, Category: log.CategoryProperty, Property: ev})
}

func (p *Poller) sweep() {
	var reverts []ledger.Revert
	p.sched.Mutate(func() { reverts = p.ledger.Sweep() })
	for _, r := range reverts {
		p.debugLog("unconfirmed write restored", "property", r.ID, "pending", r.Pending, "restored", r.Restored)
		p.emit(log.Event{
			Source:   log.SourceTimer,
			Category: log.CategoryLedger,
			Ledger: &log.LedgerEvent{
				Property: r.ID.String(),
				Action:   log.LedgerRestore,
				Pending:  r.Pending.String(),
				Previous: r.Restored.String(),
				Age:      r.Age,
			},
		})
	}
	if len(reverts) > 0 {
		p.markChanged()
	}
}

func (p *Poller) markChanged() {
	p.mu.Lock()
	p.lastChange = p.sched.Now()
	p.mu.Unlock()
	p.changed.Trigger()
}

func (p *Poller) notifyChange() {
	if p.onChange != nil {
		p.onChange()
	}
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

func (p *Poller) recordFailure(err error) {
	p.mu.Lock()
	p.failures++
	p.lastFailure = p.sched.Now()
	if p.failures == 1 {
		p.failingSince = p.lastFailure
	}
	p.lastErr = err
	failures := p.failures
	becameUnavailable := failures >= p.cfg.FailureThreshold && !p.unavailable
	if becameUnavailable {
		p.unavailable = true
	}
	p.mu.Unlock()

	p.emit(log.Event{
		Source:   log.SourcePoll,
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: fmt.Sprintf("poll failure %d", failures),
		},
	})
	if !becameUnavailable {
		return
	}
	if p.logger != nil {
		p.logger.Warn("device unavailable", "did", p.did, "failures", failures, "error", err)
	}
	p.emitAvailability("AVAILABLE", "UNAVAILABLE", err.Error())
	if p.onUnavailable != nil {
		p.onUnavailable(err)
	}
}

func (p *Poller) recordSuccess() {
	p.mu.Lock()
	p.failures = 0
	p.failingSince = time.Time{}
	p.lastErr = nil
	recovered := p.unavailable
	p.unavailable = false
	p.mu.Unlock()

	if !recovered {
		return
	}
	if p.logger != nil {
		p.logger.Info("device available", "did", p.did)
	}
	p.emitAvailability("UNAVAILABLE", "AVAILABLE", "poll succeeded")
	if p.onAvailable != nil {
		p.onAvailable()
	}
}

func (p *Poller) emitAvailability(from, to, reason string) {
	p.emit(log.Event{
		Source:   log.SourcePoll,
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityAvailability,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

// Available reports whether the device answered recently enough.
func (p *Poller) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.unavailable
}

// Stats describes the poller state.
type Stats struct {
	Cycles      uint64
	Failures    int
	LastFailure time.Time
	LastChange  time.Time
	LastError   error
}

// Stats returns a copy of the poller state.
func (p *Poller) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Cycles:      p.cycles,
		Failures:    p.failures,
		LastFailure: p.lastFailure,
		LastChange:  p.lastChange,
		LastError:   p.lastErr,
	}
}
