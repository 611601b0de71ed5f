package vacsync_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacsync/vacsync-go/pkg/command"
	"github.com/vacsync/vacsync-go/pkg/config"
	"github.com/vacsync/vacsync-go/pkg/log"
	"github.com/vacsync/vacsync-go/pkg/metrics"
	"github.com/vacsync/vacsync-go/pkg/persistence"
	"github.com/vacsync/vacsync-go/pkg/poller"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/scheduler"
	"github.com/vacsync/vacsync-go/pkg/session"
	"github.com/vacsync/vacsync-go/pkg/status"
	"github.com/vacsync/vacsync-go/pkg/transport"
)

type deployment struct {
	clock *scheduler.ManualClock
	sim   *transport.Simulator
	sess  *session.Session
	trace *log.FileLogger
}

func deploy(t *testing.T, cfg config.Config) *deployment {
	t.Helper()
	sc, err := cfg.Session()
	require.NoError(t, err)

	trace, err := log.NewFileLogger(cfg.TraceLog)
	require.NoError(t, err)

	d := &deployment{
		clock: scheduler.NewManualClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
		sim:   transport.NewSimulator(cfg.Device.DID),
		trace: trace,
	}
	d.sess, err = session.New(sc, d.sim,
		session.WithClock(d.clock),
		session.WithTraceLogger(trace),
		session.WithStateStore(persistence.NewStateStore(cfg.StateFile)),
	)
	require.NoError(t, err)
	d.sim.OnPush(d.sess.OnMessage)
	t.Cleanup(func() {
		_ = d.sess.Close()
		_ = trace.Close()
	})
	require.NoError(t, d.sess.Connect(context.Background()))
	return d
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg, err := config.Parse([]byte(`
device:
  did: "402136817"
  model: dreame.vacuum.r2228o
  firmware: 4.3.9_1600
ledger:
  discard_window: 5s
  restore_window: 15s
`))
	require.NoError(t, err)
	cfg.TraceLog = filepath.Join(dir, "trace.cbor")
	cfg.StateFile = filepath.Join(dir, "state.json")
	return cfg
}

func readTrace(t *testing.T, path string) []log.Event {
	t.Helper()
	events, err := log.ReadAll(path, log.Filter{})
	require.NoError(t, err)
	return events
}

// A write survives a stale push, gets confirmed by the next poll and shows
// up in metrics and the trace.
func TestOptimisticWriteEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	d := deploy(t, cfg)
	ctx := context.Background()
	collector := metrics.NewCollector(d.sess, cfg.Device.Model)

	require.NoError(t, d.sess.Commands().SetSetting(ctx, command.SettingVolume, 80))
	assert.Equal(t, 1, d.sess.Ledger().Len())

	// A push sent before the device applied the write.
	addr := property.AddressOf(property.Volume)
	d.sess.OnMessage(transport.MethodPropertiesChanged, []transport.PushParam{
		{DID: cfg.Device.DID, Siid: addr.Siid, Piid: addr.Piid, Value: int64(50)},
	})
	d.clock.Advance(0)
	assert.Equal(t, int64(80), d.sess.Store().IntOr(property.Volume, -1))

	require.NoError(t, d.sess.Refresh(ctx))
	assert.Equal(t, 0, d.sess.Ledger().Len())

	expected := `
# HELP vacsync_pending_writes Optimistic writes waiting for confirmation
# TYPE vacsync_pending_writes gauge
vacsync_pending_writes{device_id="402136817",model="dreame.vacuum.r2228o"} 0
`
	assert.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "vacsync_pending_writes"))
	require.NoError(t, d.trace.Close())

	var actions []log.LedgerAction
	for _, ev := range readTrace(t, cfg.TraceLog) {
		assert.Equal(t, cfg.Device.DID, ev.DeviceID)
		if ev.Ledger != nil && ev.Ledger.Property == property.Volume.String() {
			actions = append(actions, ev.Ledger.Action)
		}
	}
	assert.Contains(t, actions, log.LedgerBegin)
	assert.Contains(t, actions, log.LedgerDiscard)
}

// A cleaning job started from the session completes, the cleanup flag is
// persisted and a new session picks it up.
func TestCleaningJobSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)
	d := deploy(t, cfg)
	ctx := context.Background()

	require.NoError(t, d.sess.Commands().Start(ctx))
	d.sim.Set(property.TaskStatus, int64(status.TaskStatusAutoCleaning))
	require.NoError(t, d.sess.Refresh(ctx))
	assert.True(t, d.sess.View().Started())

	d.sim.Set(property.TaskStatus, int64(status.TaskStatusCompleted))
	require.NoError(t, d.sess.Refresh(ctx))
	d.clock.Advance(poller.DefaultDebounceWindow)
	require.NoError(t, d.sess.Close())

	e := deploy(t, cfg)
	started, completed := e.sess.View().Session().Cleanup()
	assert.False(t, started)
	assert.True(t, completed)
}
