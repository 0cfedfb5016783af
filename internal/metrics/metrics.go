// Package metrics exposes the wallet state as Prometheus collectors.
//
// Collectors are registered on a caller-supplied registry and fed from the
// state model's snapshot notifications. Nothing is served over the network;
// WriteText renders the current values in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/mmynk/vecwallet/internal/models"
)

const namespace = "vecwallet"

// Metrics holds the wallet collectors.
type Metrics struct {
	balance       prometheus.Gauge
	entries       *prometheus.CounterVec
	moved         *prometheus.CounterVec
	applyDuration prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "balance",
			Help:      "Current cash balance.",
		}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_entries_total",
			Help:      "Number of recorded history entries by kind.",
		}, []string{"kind"}),
		moved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cash_moved_total",
			Help:      "Absolute amount of cash added or reduced, by kind.",
		}, []string{"kind"}),
		applyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "apply_duration_seconds",
			Help:      "Time spent applying a delta, listeners included.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.balance, m.entries, m.moved, m.applyDuration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	// Pre-create both label values so they show up before the first change.
	for _, k := range []models.Kind{models.KindAddition, models.KindSubtraction} {
		m.entries.WithLabelValues(k.String())
		m.moved.WithLabelValues(k.String())
	}

	return m, nil
}

// Observe updates the collectors from a freshly published snapshot.
// It has the shape of a state.Listener and expects to see every snapshot once.
func (m *Metrics) Observe(s models.Snapshot) {
	m.balance.Set(s.Balance.InexactFloat64())

	last, ok := s.Last()
	if !ok {
		return
	}
	kind := last.Kind.String()
	m.entries.WithLabelValues(kind).Inc()
	m.moved.WithLabelValues(kind).Add(last.Delta.Abs().InexactFloat64())
}

// ObserveApplyDuration records the duration of one apply call.
func (m *Metrics) ObserveApplyDuration(d time.Duration) {
	m.applyDuration.Observe(d.Seconds())
}

// WriteText gathers every metric from g and writes it to w in the Prometheus
// text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
