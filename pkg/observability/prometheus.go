package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gridpark"

// PrometheusHooks records every hook event as a Prometheus metric.
//
// Metrics:
//   - gridpark_runs_total{status}
//   - gridpark_layouts_total
//   - gridpark_run_duration_seconds
//   - gridpark_batch_duration_seconds{status}
//   - gridpark_exports_total{format,status}
//   - gridpark_http_requests_inflight
//   - gridpark_http_request_duration_seconds{method,route,status}
type PrometheusHooks struct {
	runs          *prometheus.CounterVec
	layouts       prometheus.Counter
	runDuration   prometheus.Histogram
	batchDuration *prometheus.HistogramVec
	exports       *prometheus.CounterVec
	inflight      prometheus.Gauge
	reqDuration   *prometheus.HistogramVec
}

// NewPrometheusHooks creates the collectors and registers them with reg.
// It panics if any collector is already registered, like prometheus.MustRegister.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	h := &PrometheusHooks{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Enumeration runs by outcome.",
		}, []string{"status"}),
		layouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layouts_total",
			Help:      "Layouts scored across all runs.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of enumeration runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		batchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one flushed batch.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"status"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Output files written by format and outcome.",
		}, []string{"format", "status"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_inflight",
			Help:      "Requests currently being handled.",
		}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(h.runs, h.layouts, h.runDuration, h.batchDuration, h.exports, h.inflight, h.reqDuration)
	return h
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (h *PrometheusHooks) OnEnumerateStart(context.Context, int, string, bool) {}

func (h *PrometheusHooks) OnEnumerateComplete(_ context.Context, layouts int, d time.Duration, err error) {
	h.runs.WithLabelValues(status(err)).Inc()
	h.layouts.Add(float64(layouts))
	h.runDuration.Observe(d.Seconds())
}

func (h *PrometheusHooks) OnBatchComplete(_ context.Context, _, _ int, d time.Duration, err error) {
	h.batchDuration.WithLabelValues(status(err)).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnExportStart(context.Context, string, string) {}

func (h *PrometheusHooks) OnExportComplete(_ context.Context, format, _ string, _ time.Duration, err error) {
	h.exports.WithLabelValues(format, status(err)).Inc()
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {
	h.inflight.Inc()
}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	h.inflight.Dec()
	h.reqDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ ExportHooks   = (*PrometheusHooks)(nil)
	_ HTTPHooks     = (*PrometheusHooks)(nil)
)
