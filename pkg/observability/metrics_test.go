package observability

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsHooks(t *testing.T) {
	m := NewMetricsHooks()
	ctx := context.Background()

	m.OnParseStart(ctx, "in.csv")
	m.OnParseComplete(ctx, "in.csv", 12, 3*time.Millisecond, nil)
	m.OnExportStart(ctx, "graphml", 10)
	m.OnExportComplete(ctx, "graphml", "in.graphml", time.Millisecond, nil)
	m.OnExportComplete(ctx, "graphml", "in.graphml", time.Millisecond, errors.New("disk full"))

	if got := testutil.ToFloat64(m.rows); got != 12 {
		t.Errorf("input_rows = %v, want 12", got)
	}
	if got := testutil.ToFloat64(m.nodes); got != 10 {
		t.Errorf("diagram_nodes = %v, want 10", got)
	}
	if got := testutil.ToFloat64(m.runs.WithLabelValues("export", "ok")); got != 1 {
		t.Errorf("export ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.runs.WithLabelValues("export", "error")); got != 1 {
		t.Errorf("export error = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.stageDuration); got != 2 {
		t.Errorf("stage_duration_seconds series = %d, want 2", got)
	}
}

func TestMetricsWriteTextfile(t *testing.T) {
	m := NewMetricsHooks()
	m.OnParseComplete(context.Background(), "in.csv", 3, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "adminviz.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"adminviz_input_rows 3", `adminviz_stage_total{result="ok",stage="parse"} 1`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q:\n%s", want, data)
		}
	}
}
