package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "adminviz"

// MetricsHooks records pipeline events as Prometheus metrics in its own
// registry. Batch runs write the registry to a node_exporter textfile with
// [MetricsHooks.WriteTextfile].
type MetricsHooks struct {
	registry *prometheus.Registry

	runs          *prometheus.CounterVec
	rows          prometheus.Gauge
	nodes         prometheus.Gauge
	stageDuration *prometheus.HistogramVec
	lastSuccess   prometheus.Gauge
}

var _ PipelineHooks = (*MetricsHooks)(nil)

// NewMetricsHooks creates metrics hooks with a fresh registry.
func NewMetricsHooks() *MetricsHooks {
	m := &MetricsHooks{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "stage_total",
			Help:      "Pipeline stages run, by stage and result.",
		}, []string{"stage", "result"}),
		rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "input_rows",
			Help:      "Rows read from the last traversal table.",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "diagram_nodes",
			Help:      "Nodes sent to the rendering backend in the last export.",
		}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"stage"}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful export.",
		}),
	}
	m.registry.MustRegister(m.runs, m.rows, m.nodes, m.stageDuration, m.lastSuccess)
	return m
}

// Registry returns the registry holding the pipeline metrics.
func (m *MetricsHooks) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the metrics in the text exposition format to path.
func (m *MetricsHooks) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *MetricsHooks) OnParseStart(context.Context, string) {}

func (m *MetricsHooks) OnParseComplete(_ context.Context, _ string, rows int, d time.Duration, err error) {
	m.stageDuration.WithLabelValues("parse").Observe(d.Seconds())
	m.runs.WithLabelValues("parse", result(err)).Inc()
	m.rows.Set(float64(rows))
}

func (m *MetricsHooks) OnExportStart(_ context.Context, _ string, nodes int) {
	m.nodes.Set(float64(nodes))
}

func (m *MetricsHooks) OnExportComplete(_ context.Context, _, _ string, d time.Duration, err error) {
	m.stageDuration.WithLabelValues("export").Observe(d.Seconds())
	m.runs.WithLabelValues("export", result(err)).Inc()
	if err == nil {
		m.lastSuccess.SetToCurrentTime()
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
