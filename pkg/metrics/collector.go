package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vacsync/vacsync-go/pkg/ledger"
	"github.com/vacsync/vacsync-go/pkg/poller"
	"github.com/vacsync/vacsync-go/pkg/status"
)

// Source is the session state a Collector reads. *session.Session
// implements it.
type Source interface {
	DeviceID() string
	View() *status.View
	Ready() bool
	Available() bool
	Ledger() *ledger.Ledger
	Poller() *poller.Poller
}

// Collector exports vacuum state and engine counters.
type Collector struct {
	source Source
	model  string

	up             prometheus.Gauge
	batteryPercent *prometheus.GaugeVec
	state          *prometheus.GaugeVec
	status         *prometheus.GaugeVec
	errorCode      *prometheus.GaugeVec
	suctionLevel   *prometheus.GaugeVec
	cleaningArea   *prometheus.GaugeVec
	cleaningTime   *prometheus.GaugeVec
	charging       *prometheus.GaugeVec
	cleaningActive *prometheus.GaugeVec
	pendingWrites  *prometheus.GaugeVec
	pollCycles     *prometheus.Desc
	pollFailures   *prometheus.GaugeVec
	ledgerOutcomes *prometheus.Desc
}

// NewCollector creates a collector for one session. The model label is
// fixed at construction.
func NewCollector(source Source, model string) *Collector {
	labels := []string{"device_id", "model"}
	with := func(extra string) []string { return append([]string{"device_id", "model"}, extra) }
	return &Collector{
		source: source,
		model:  model,
		up: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vacsync_device_up",
			Help: "Whether the device answers polls (1=ok, 0=unavailable)",
		}),
		batteryPercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_battery_percent",
			Help: "Battery percentage (0-100)",
		}, labels),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_state",
			Help: "Vacuum state (label) reported by the device",
		}, with("state")),
		status: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_status",
			Help: "Vacuum status (label) reported by the device",
		}, with("status")),
		errorCode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_error",
			Help: "Active error (label), absent when there is none",
		}, with("error")),
		suctionLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_suction_level",
			Help: "Suction level (label)",
		}, with("suction_level")),
		cleaningArea: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_cleaning_area_square_meters",
			Help: "Current cleaning area (square meters)",
		}, labels),
		cleaningTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_cleaning_time_minutes",
			Help: "Current cleaning time (minutes)",
		}, labels),
		charging: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_charging",
			Help: "Whether the vacuum is charging (1=yes, 0=no)",
		}, labels),
		cleaningActive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_job_active",
			Help: "Whether a cleaning job is active (1=yes, 0=no)",
		}, labels),
		pendingWrites: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_pending_writes",
			Help: "Optimistic writes waiting for confirmation",
		}, labels),
		pollFailures: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vacsync_poll_consecutive_failures",
			Help: "Consecutive failed poll cycles",
		}, labels),
		pollCycles: prometheus.NewDesc(
			"vacsync_poll_cycles_total",
			"Poll cycles run, including failed ones",
			labels, nil),
		ledgerOutcomes: prometheus.NewDesc(
			"vacsync_ledger_outcomes_total",
			"Optimistic write outcomes by kind",
			with("outcome"), nil),
	}
}

func (c *Collector) gauges() []*prometheus.GaugeVec {
	return []*prometheus.GaugeVec{
		c.batteryPercent,
		c.state,
		c.status,
		c.errorCode,
		c.suctionLevel,
		c.cleaningArea,
		c.cleaningTime,
		c.charging,
		c.cleaningActive,
		c.pendingWrites,
		c.pollFailures,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.up.Describe(ch)
	for _, g := range c.gauges() {
		g.Describe(ch)
	}
	ch <- c.pollCycles
	ch <- c.ledgerOutcomes
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, g := range c.gauges() {
		g.Reset()
	}

	did := c.source.DeviceID()
	labels := prometheus.Labels{"device_id": did, "model": c.model}
	with := func(key, value string) prometheus.Labels {
		return prometheus.Labels{"device_id": did, "model": c.model, key: value}
	}

	if c.source.Available() {
		c.up.Set(1)
	} else {
		c.up.Set(0)
	}

	stats := c.source.Poller().Stats()
	c.pollFailures.With(labels).Set(float64(stats.Failures))
	c.pendingWrites.With(labels).Set(float64(c.source.Ledger().Len()))

	if c.source.Ready() {
		v := c.source.View()
		if b := v.Battery(); b >= 0 {
			c.batteryPercent.With(labels).Set(float64(b))
		}
		c.state.With(with("state", v.State().String())).Set(1)
		c.status.With(with("status", v.Status().String())).Set(1)
		if v.HasError() {
			c.errorCode.With(with("error", v.ErrorCode().String())).Set(1)
		}
		c.suctionLevel.With(with("suction_level", v.SuctionLevel().String())).Set(1)
		c.cleaningArea.With(labels).Set(float64(v.CleanedArea()))
		c.cleaningTime.With(labels).Set(float64(v.CleaningTime()))
		c.charging.With(labels).Set(boolFloat(v.Charging()))
		c.cleaningActive.With(labels).Set(boolFloat(v.Active()))
	}

	c.up.Collect(ch)
	for _, g := range c.gauges() {
		g.Collect(ch)
	}

	ch <- prometheus.MustNewConstMetric(c.pollCycles, prometheus.CounterValue, float64(stats.Cycles), did, c.model)
	ls := c.source.Ledger().Stats()
	for _, o := range []struct {
		name  string
		value uint64
	}{
		{"written", ls.Writes},
		{"confirmed", ls.Confirmed},
		{"discarded", ls.Discarded},
		{"accepted", ls.Accepted},
		{"restored", ls.Restored},
		{"rolled_back", ls.RolledBack},
	} {
		ch <- prometheus.MustNewConstMetric(c.ledgerOutcomes, prometheus.CounterValue, float64(o.value), did, c.model, o.name)
	}
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Registry builds a registry holding the given collectors.
func Registry(collectors ...prometheus.Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	for _, c := range collectors {
		registry.MustRegister(c)
	}
	return registry
}

// Handler exposes the Prometheus registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

var _ prometheus.Collector = (*Collector)(nil)
