package transport

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vacsync/vacsync-go/pkg/property"
)

// Call records one request made to the simulator.
type Call struct {
	Op     string
	Siid   int
	Iid    int
	Value  any
	Params []ActionParam
}

// Simulator is an in-memory device.
type Simulator struct {
	mu        sync.Mutex
	did       string
	table     *property.Table
	values    map[property.Address]any
	connected bool
	push      PushHandler
	calls     []Call

	failGet    int
	failSet    int
	failAction int
	setCodes   map[property.Address]int

	// EchoWrites pushes every successful write back to the push handler.
	EchoWrites bool
}

// NewSimulator creates a connected simulator with an idle, docked robot.
func NewSimulator(did string) *Simulator {
	s := &Simulator{
		did:       did,
		table:     property.DefaultTable(),
		values:    make(map[property.Address]any),
		connected: true,
		setCodes:  make(map[property.Address]int),
	}
	defaults := map[property.ID]any{
		property.State:              int64(6),
		property.Error:              int64(0),
		property.BatteryLevel:       int64(100),
		property.ChargingStatus:     int64(3),
		property.Status:             int64(6),
		property.TaskStatus:         int64(0),
		property.SuctionLevel:       int64(1),
		property.WaterVolume:        int64(2),
		property.CleaningMode:       int64(0),
		property.CleaningPaused:     int64(0),
		property.SelfWashBaseStatus: int64(0),
		property.Volume:             int64(50),
		property.ChildLock:          int64(0),
		property.CleaningTime:       int64(0),
		property.CleanedArea:        int64(0),
	}
	for id, v := range defaults {
		s.values[property.AddressOf(id)] = v
	}
	return s
}

// OnPush installs the handler for pushed messages.
func (s *Simulator) OnPush(h PushHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.push = h
}

// Connected reports the simulated link state.
func (s *Simulator) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// SetConnected changes the simulated link state.
func (s *Simulator) SetConnected(up bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = up
}

// FailGets makes the next n GetProperties calls fail.
func (s *Simulator) FailGets(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failGet = n
}

// FailSets makes the next n SetProperty calls fail.
func (s *Simulator) FailSets(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSet = n
}

// FailActions makes the next n CallAction calls fail.
func (s *Simulator) FailActions(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAction = n
}

// SetResultCode makes writes to a property report code.
func (s *Simulator) SetResultCode(id property.ID, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCodes[property.AddressOf(id)] = code
}

// Set changes a device value without pushing it.
func (s *Simulator) Set(id property.ID, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(property.AddressOf(id), v)
}

// Value returns a device value.
func (s *Simulator) Value(id property.ID) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[property.AddressOf(id)]
	return v, ok
}

// Push changes device values and emits a properties_changed message.
func (s *Simulator) Push(values map[property.ID]any) {
	s.mu.Lock()
	params := make([]PushParam, 0, len(values))
	for _, id := range property.All() {
		v, ok := values[id]
		if !ok {
			continue
		}
		addr := property.AddressOf(id)
		s.setLocked(addr, v)
		params = append(params, PushParam{DID: s.did, Siid: addr.Siid, Piid: addr.Piid, Value: v})
	}
	h := s.push
	s.mu.Unlock()

	if h != nil && len(params) > 0 {
		h(MethodPropertiesChanged, params)
	}
}

// Calls returns the recorded requests.
func (s *Simulator) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// ResetCalls clears the recorded requests.
func (s *Simulator) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// GetProperties implements Transport.
func (s *Simulator) GetProperties(ctx context.Context, reqs []PropertyRequest) ([]PropertyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return nil, ErrNotConnected
	}
	s.calls = append(s.calls, Call{Op: "get", Value: len(reqs)})
	if s.failGet > 0 {
		s.failGet--
		return nil, ErrTimeout
	}

	out := make([]PropertyResult, 0, len(reqs))
	for _, r := range reqs {
		res := PropertyResult{DID: r.DID, Siid: r.Siid, Piid: r.Piid, Code: CodeNotFound}
		if v, ok := s.values[property.Address{Siid: r.Siid, Piid: r.Piid}]; ok {
			res.Code = CodeOK
			res.Value = v
		}
		out = append(out, res)
	}
	return out, nil
}

// SetProperty implements Transport.
func (s *Simulator) SetProperty(ctx context.Context, siid, piid int, value any, retries int) ([]SetResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return nil, ErrNotConnected
	}
	s.calls = append(s.calls, Call{Op: "set", Siid: siid, Iid: piid, Value: value})
	if s.failSet > 0 {
		s.failSet--
		s.mu.Unlock()
		return nil, ErrTimeout
	}
	addr := property.Address{Siid: siid, Piid: piid}
	code := s.setCodes[addr]
	if code == CodeOK {
		s.setLocked(addr, value)
	}
	echo := s.EchoWrites && code == CodeOK
	h := s.push
	s.mu.Unlock()

	if echo && h != nil {
		h(MethodPropertiesChanged, []PushParam{{DID: s.did, Siid: siid, Piid: piid, Value: value}})
	}
	return []SetResult{{Siid: siid, Piid: piid, Code: code}}, nil
}

// CallAction implements Transport. Common actions update the simulated
// state the way a robot would.
func (s *Simulator) CallAction(ctx context.Context, siid, aiid int, params []ActionParam) (ActionResult, error) {
	if err := ctx.Err(); err != nil {
		return ActionResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return ActionResult{}, ErrNotConnected
	}
	s.calls = append(s.calls, Call{Op: "action", Siid: siid, Iid: aiid, Params: params})
	if s.failAction > 0 {
		s.failAction--
		return ActionResult{}, ErrTimeout
	}

	if err := s.applyAction(property.ActionAddress{Siid: siid, Aiid: aiid}, params); err != nil {
		return ActionResult{Code: CodeNotFound}, nil
	}
	return ActionResult{Code: CodeOK}, nil
}

func (s *Simulator) applyAction(addr property.ActionAddress, params []ActionParam) error {
	set := func(id property.ID, v int64) { s.setLocked(property.AddressOf(id), v) }
	is := func(a property.ActionID) bool {
		want, _ := s.table.Action(a)
		return want == addr
	}

	switch {
	case is(property.ActionStart):
		set(property.Status, 2)
		set(property.TaskStatus, 1)
		set(property.ChargingStatus, 2)
		set(property.CleaningPaused, 0)
	case is(property.ActionPause):
		set(property.Status, 1)
		set(property.TaskStatus, 6)
	case is(property.ActionStop):
		set(property.Status, 0)
		set(property.TaskStatus, 0)
		set(property.CleaningPaused, 0)
	case is(property.ActionCharge):
		set(property.Status, 3)
		set(property.ChargingStatus, 5)
	case is(property.ActionStartCustom):
		status := int64(-1)
		for _, p := range params {
			if p.Piid == 1 {
				if n, ok := asInt(p.Value); ok {
					status = n
				}
			}
		}
		tasks := map[int64]int64{18: 3, 19: 2, 20: 4, 21: 5, 22: 20, 23: 22, 25: 1}
		task, ok := tasks[status]
		if !ok {
			return fmt.Errorf("unknown custom status %d", status)
		}
		set(property.Status, status)
		set(property.TaskStatus, task)
		set(property.ChargingStatus, 2)
	case is(property.ActionClearWarning):
		set(property.Error, 0)
	case is(property.ActionStartWashing):
		if len(params) == 0 {
			return fmt.Errorf("missing washing parameter")
		}
		arg, _ := params[0].Value.(string)
		switch strings.TrimSpace(arg) {
		case "2,1":
			set(property.SelfWashBaseStatus, 1)
		case "2,0":
			set(property.SelfWashBaseStatus, 4)
		case "3,1":
			set(property.SelfWashBaseStatus, 2)
		case "3,0":
			set(property.SelfWashBaseStatus, 0)
		default:
			return fmt.Errorf("unknown washing parameter %q", arg)
		}
	case is(property.ActionStartAutoEmpty):
		set(property.AutoEmptyStatus, 1)
	case is(property.ActionResetMainBrush):
		set(property.MainBrushLeft, 100)
	case is(property.ActionResetSideBrush):
		set(property.SideBrushLeft, 100)
	case is(property.ActionResetFilter):
		set(property.FilterLeft, 100)
	case is(property.ActionResetSensor):
		set(property.SensorDirtyLeft, 100)
	case is(property.ActionResetMopPad):
		set(property.MopPadLeft, 100)
	case is(property.ActionResetSilverIon):
		set(property.SilverIonLeft, 100)
	case is(property.ActionResetDetergent):
		set(property.DetergentLeft, 100)
	case is(property.ActionResetSecondaryFilter):
		set(property.SecondaryFilterLeft, 100)
	}
	return nil
}

func (s *Simulator) setLocked(addr property.Address, v any) {
	if v == nil {
		delete(s.values, addr)
		return
	}
	s.values[addr] = v
}

func asInt(v any) (int64, bool) {
	pv, err := property.FromAny(v)
	if err != nil {
		return 0, false
	}
	return pv.AsInt()
}

var _ Transport = (*Simulator)(nil)
