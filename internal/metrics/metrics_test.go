package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder(t *testing.T) {
	r := New()

	r.ObserveDescent(12, true)
	r.ObserveDescent(500, false)
	r.ObserveDescent(30, true)
	r.SetBest(4.5)
	r.AddSubgraphs(7)
	r.ObserveStage("enumerate", 1500*time.Millisecond)

	if got := testutil.ToFloat64(r.descents.WithLabelValues("true")); got != 2 {
		t.Errorf("expected 2 converged descents, got %v", got)
	}
	if got := testutil.ToFloat64(r.descents.WithLabelValues("false")); got != 1 {
		t.Errorf("expected 1 stalled descent, got %v", got)
	}
	if got := testutil.ToFloat64(r.best); got != 4.5 {
		t.Errorf("expected best 4.5, got %v", got)
	}
	if got := testutil.ToFloat64(r.subgraphs); got != 7 {
		t.Errorf("expected 7 subgraphs, got %v", got)
	}
	if got := testutil.ToFloat64(r.duration.WithLabelValues("enumerate")); got != 1.5 {
		t.Errorf("expected 1.5s, got %v", got)
	}
	if n := testutil.CollectAndCount(r.iterations); n != 1 {
		t.Errorf("expected one histogram, got %d", n)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := New()
	r.AddSubgraphs(3)

	path := filepath.Join(t.TempDir(), "kinetic.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "kinetic_graph_subgraphs_total 3") {
		t.Errorf("unexpected textfile contents:\n%s", b)
	}
}
