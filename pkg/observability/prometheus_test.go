package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusHooksRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewPrometheusHooks(reg)
	ctx := context.Background()

	h.OnEnumerateStart(ctx, 2, "G,T", false)
	h.OnBatchComplete(ctx, 1, 16, time.Millisecond, nil)
	h.OnEnumerateComplete(ctx, 16, time.Second, nil)
	h.OnEnumerateComplete(ctx, 4, time.Second, errors.New("canceled"))

	if got := testutil.ToFloat64(h.layouts); got != 20 {
		t.Errorf("layouts_total = %v, want 20", got)
	}
	if got := testutil.ToFloat64(h.runs.WithLabelValues("ok")); got != 1 {
		t.Errorf("runs_total{ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.runs.WithLabelValues("error")); got != 1 {
		t.Errorf("runs_total{error} = %v, want 1", got)
	}

	h.OnExportComplete(ctx, "csv", "a.csv", time.Millisecond, nil)
	h.OnExportComplete(ctx, "csv", "b.csv", time.Millisecond, nil)
	h.OnExportComplete(ctx, "svg", "a.svg", time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(h.exports.WithLabelValues("csv", "ok")); got != 2 {
		t.Errorf("exports_total{csv,ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(h.exports.WithLabelValues("svg", "error")); got != 1 {
		t.Errorf("exports_total{svg,error} = %v, want 1", got)
	}

	h.OnRequest(ctx, "GET", "/healthz")
	if got := testutil.ToFloat64(h.inflight); got != 1 {
		t.Errorf("inflight = %v, want 1", got)
	}
	h.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)
	if got := testutil.ToFloat64(h.inflight); got != 0 {
		t.Errorf("inflight = %v, want 0", got)
	}

	n, err := testutil.GatherAndCount(reg, "gridpark_http_request_duration_seconds")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 1 {
		t.Errorf("request duration series = %d, want 1", n)
	}
}

func TestPrometheusHooksDoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusHooks(reg)
	defer func() {
		if recover() == nil {
			t.Error("registering twice should panic")
		}
	}()
	NewPrometheusHooks(reg)
}
