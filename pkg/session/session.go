package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vacsync/vacsync-go/pkg/capability"
	"github.com/vacsync/vacsync-go/pkg/command"
	"github.com/vacsync/vacsync-go/pkg/ledger"
	"github.com/vacsync/vacsync-go/pkg/log"
	"github.com/vacsync/vacsync-go/pkg/persistence"
	"github.com/vacsync/vacsync-go/pkg/poller"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/scheduler"
	"github.com/vacsync/vacsync-go/pkg/status"
	"github.com/vacsync/vacsync-go/pkg/transport"
)

// Session lifecycle states reported in trace events.
const (
	StateConnecting = "CONNECTING"
	StateReady      = "READY"
	StateClosed     = "CLOSED"
)

const timerPush = "push"

// Session errors.
var (
	ErrClosed     = errors.New("session closed")
	ErrNotReady   = errors.New("session not connected")
	ErrNoDeviceID = errors.New("device id is required")
)

// Config configures a Session.
type Config struct {
	// DeviceID is the device identifier (did) used in every request.
	DeviceID string `yaml:"did"`

	// Model and Firmware select the capability profile.
	Model    string `yaml:"model"`
	Firmware string `yaml:"firmware"`

	// Catalog is an encoded capability catalog. Nil uses the built-in one.
	Catalog []byte `yaml:"-"`

	Ledger   ledger.Config  `yaml:"ledger"`
	Commands command.Config `yaml:"commands"`
	Poller   poller.Config  `yaml:"poller"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		Ledger:   ledger.DefaultConfig(),
		Commands: command.DefaultConfig(),
		Poller:   poller.DefaultConfig(),
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for operational output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithTraceLogger sets the protocol trace logger. Events are stamped with
// the session id, device id and model before they reach it.
func WithTraceLogger(logger log.Logger) Option {
	return func(s *Session) { s.traceNext = logger }
}

// WithClock replaces the wall clock, typically with a ManualClock in tests.
func WithClock(clock scheduler.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithStateStore persists session-only state across restarts.
func WithStateStore(store *persistence.StateStore) Option {
	return func(s *Session) { s.stateStore = store }
}

// WithTable replaces the property/action table.
func WithTable(t *property.Table) Option {
	return func(s *Session) { s.table = t }
}

// Session owns everything needed to talk to one vacuum: the property
// store, the optimistic write ledger, the derived status view, the command
// orchestrator and the poller. All timers run on one scheduler.
type Session struct {
	id        string
	cfg       Config
	transport transport.Transport
	table     *property.Table
	clock     scheduler.Clock

	sched  *scheduler.Scheduler
	store  *property.Store
	ledger *ledger.Ledger
	state  *status.SessionState
	view   *status.View
	orch   *command.Orchestrator
	poller *poller.Poller

	logger     *slog.Logger
	traceNext  log.Logger
	trace      *stampedLogger
	stateStore *persistence.StateStore

	mu          sync.Mutex
	ready       bool
	closed      bool
	cancelRun   context.CancelFunc
	pushQueue   [][]transport.PushParam
	saved       status.SessionSnapshot
	onChange    []func()
	onError     []func(error)
	onAvailable []func()
}

// New creates a session for the device in cfg. Nothing is sent until
// Connect.
func New(cfg Config, t transport.Transport, opts ...Option) (*Session, error) {
	if cfg.DeviceID == "" {
		return nil, ErrNoDeviceID
	}
	s := &Session{
		id:        uuid.New().String(),
		cfg:       cfg,
		transport: t,
		table:     property.DefaultTable(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.sched = scheduler.New(s.clock)
	s.trace = &stampedLogger{next: s.traceNext, sessionID: s.id, deviceID: cfg.DeviceID}
	s.store = property.NewStore()
	s.ledger = ledger.New(s.store, cfg.Ledger, ledger.WithClock(s.sched.Now), ledger.WithTable(s.table))
	s.state = status.NewSessionState()
	s.view = status.NewView(s.store, s.state)

	s.orch = command.New(cfg.Commands, t, s.store, s.ledger, s.view,
		command.WithLogger(s.logger),
		command.WithTraceLogger(s.trace),
		command.WithClock(s.sched.Now),
		command.WithTable(s.table),
		command.WithOwner(s.sched.Mutate),
		command.WithRefresh(func(d time.Duration) { s.poller.RefreshIn(d) }),
	)
	s.poller = poller.New(cfg.Poller, cfg.DeviceID, t, s.store, s.ledger, s.view, s.sched,
		poller.WithLogger(s.logger),
		poller.WithTraceLogger(s.trace),
		poller.WithTicker(s.orch),
		poller.WithTable(s.table),
		poller.OnChange(s.notifyChange),
		poller.OnUnavailable(s.notifyError),
		poller.OnAvailable(s.notifyAvailable),
	)
	return s, nil
}

// ID returns the session id stamped on trace events.
func (s *Session) ID() string { return s.id }

// DeviceID returns the device identifier.
func (s *Session) DeviceID() string { return s.cfg.DeviceID }

// Store returns the property store.
func (s *Session) Store() *property.Store { return s.store }

// Ledger returns the optimistic write ledger.
func (s *Session) Ledger() *ledger.Ledger { return s.ledger }

// View returns the derived status view.
func (s *Session) View() *status.View { return s.view }

// Commands returns the command orchestrator.
func (s *Session) Commands() *command.Orchestrator { return s.orch }

// Poller returns the poller.
func (s *Session) Poller() *poller.Poller { return s.poller }

// Profile returns the capability profile, nil before Connect.
func (s *Session) Profile() *capability.Profile { return s.view.Profile() }

// Ready reports whether the first fetch completed.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Available reports whether the device is answering polls.
func (s *Session) Available() bool { return s.poller.Available() }

// OnChange registers a callback run after store changes settle.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// OnError registers a callback run when the device becomes unavailable.
func (s *Session) OnError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = append(s.onError, fn)
}

// OnAvailable registers a callback run when the device recovers.
func (s *Session) OnAvailable(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onAvailable = append(s.onAvailable, fn)
}

func (s *Session) debugLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Session) emitState(from, to, reason string) {
	s.trace.Log(log.Event{
		Timestamp: s.sched.Now(),
		Source:    log.SourceLocal,
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntitySession,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Connect loads the capability profile, restores persisted session state
// and runs the first full fetch. Listeners see the first values only after
// the profile is in place.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.mu.Unlock()

	s.emitState("", StateConnecting, "")

	catalog := s.cfg.Catalog
	if catalog == nil {
		catalog = capability.BuiltinCatalog()
	}
	profile, err := capability.Load(catalog, s.cfg.Model, s.cfg.Firmware)
	if err != nil {
		return fmt.Errorf("load capabilities for %s: %w", s.cfg.Model, err)
	}
	s.view.SetProfile(profile)
	s.trace.setModel(s.cfg.Model)

	if err := s.restore(); err != nil {
		// A broken state file only costs the derived session fields.
		if s.logger != nil {
			s.logger.Warn("restore session state", "path", s.stateStore.Path(), "error", err)
		}
	}

	s.sched.Do(func() { err = s.poller.Cycle(ctx) })
	if err != nil {
		return fmt.Errorf("initial fetch: %w", err)
	}

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.emitState(StateConnecting, StateReady, "")
	if s.logger != nil {
		s.logger.Info("session ready", "did", s.cfg.DeviceID, "model", s.cfg.Model, "properties", s.store.Len())
	}
	return nil
}

// Run connects if needed and polls until ctx is done or Close is called.
func (s *Session) Run(ctx context.Context) error {
	if !s.Ready() {
		if err := s.Connect(ctx); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cancel()
		return ErrClosed
	}
	s.cancelRun = cancel
	s.mu.Unlock()

	// Connect already fetched everything.
	s.poller.StartAfter(ctx, s.poller.NextInterval())

	<-ctx.Done()
	s.poller.Stop()
	return nil
}

// Refresh runs one poll cycle now.
func (s *Session) Refresh(ctx context.Context) error {
	if !s.Ready() {
		return ErrNotReady
	}
	var err error
	s.sched.Do(func() { err = s.poller.Cycle(ctx) })
	return err
}

// Close stops polling, cancels every timer and saves session state.
// Calling it more than once is safe.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	cancel := s.cancelRun
	from := StateConnecting
	if s.ready {
		from = StateReady
	}
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.poller.Stop()
	s.sched.Close()

	err := s.persist()
	s.emitState(from, StateClosed, "")
	return err
}

// ---------------------------------------------------------------------------
// Push handling
// ---------------------------------------------------------------------------

// OnMessage handles a pushed message from the device. It matches
// transport.PushHandler. Property pushes are queued and applied on the
// scheduler, so they never interleave with a poll cycle.
func (s *Session) OnMessage(method string, params []transport.PushParam) {
	if method != transport.MethodPropertiesChanged {
		s.debugLog("ignoring push", "method", method)
		return
	}

	s.mu.Lock()
	if s.closed || !s.ready {
		s.mu.Unlock()
		s.debugLog("dropping push before ready", "params", len(params))
		return
	}
	s.pushQueue = append(s.pushQueue, params)
	s.mu.Unlock()

	s.sched.Schedule(timerPush, 0, s.drainPush)
}

func (s *Session) drainPush() {
	s.mu.Lock()
	queue := s.pushQueue
	s.pushQueue = nil
	s.mu.Unlock()

	var updates []property.Update
	for _, params := range queue {
		for _, p := range params {
			if p.DID != "" && p.DID != s.cfg.DeviceID {
				continue
			}
			id, ok := s.table.Lookup(p.Siid, p.Piid)
			if !ok {
				s.debugLog("push for unknown property", "siid", p.Siid, "piid", p.Piid)
				continue
			}
			v, err := property.FromAny(p.Value)
			if err != nil {
				s.debugLog("undecodable push value", "property", id, "value", p.Value, "error", err)
				continue
			}
			updates = append(updates, property.Update{ID: id, Value: v})
		}
	}
	if len(updates) == 0 {
		return
	}
	s.poller.Ingest(log.SourcePush, updates)
}

// ---------------------------------------------------------------------------
// Callbacks
// ---------------------------------------------------------------------------

func (s *Session) notifyChange() {
	if err := s.persist(); err != nil && s.logger != nil {
		s.logger.Warn("save session state", "error", err)
	}
	s.mu.Lock()
	fns := append([]func(){}, s.onChange...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *Session) notifyError(err error) {
	s.trace.Log(log.Event{
		Timestamp: s.sched.Now(),
		Source:    log.SourcePoll,
		Category:  log.CategoryError,
		Error:     &log.ErrorEventData{Message: err.Error(), Context: "device unavailable"},
	})
	s.mu.Lock()
	fns := append([]func(error){}, s.onError...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn(err)
	}
}

func (s *Session) notifyAvailable() {
	s.mu.Lock()
	fns := append([]func(){}, s.onAvailable...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

func (s *Session) restore() error {
	if s.stateStore == nil {
		return nil
	}
	st, err := s.stateStore.Load()
	if err != nil {
		return err
	}
	if st == nil || st.DeviceID != s.cfg.DeviceID {
		return nil
	}
	s.state.Restore(st.Session)
	s.mu.Lock()
	s.saved = st.Session
	s.mu.Unlock()
	return nil
}

// persist saves session-only state when it differs from the last save.
func (s *Session) persist() error {
	if s.stateStore == nil {
		return nil
	}
	snap := s.state.Snapshot()
	s.mu.Lock()
	unchanged := snap == s.saved
	s.mu.Unlock()
	if unchanged {
		return nil
	}

	err := s.stateStore.Save(&persistence.DeviceState{
		SavedAt:  s.sched.Now(),
		DeviceID: s.cfg.DeviceID,
		Model:    s.cfg.Model,
		Firmware: s.cfg.Firmware,
		Session:  snap,
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.saved = snap
	s.mu.Unlock()
	return nil
}
