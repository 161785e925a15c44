package prompush

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"pitchstats/internal/metrics"
)

func TestNewBackendRequiresGateway(t *testing.T) {
	if _, err := NewBackend("job", ""); err == nil {
		t.Fatal("expected error for empty gateway URL")
	}
	b, err := NewBackend("", "http://localhost:9091")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if b.jobName != "pitchstats" {
		t.Errorf("default job name = %q", b.jobName)
	}
}

func TestIncCounterRouting(t *testing.T) {
	b, err := NewBackend("import", "http://localhost:9091")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}

	b.IncCounter("ingest_rows_total", 3, metrics.Labels{"kind": "imported"})
	b.IncCounter("ingest_chunks_total", 1, nil)
	b.IncCounter("no_such_metric", 7, nil)

	if got := testutil.ToFloat64(b.rowCounter.WithLabelValues("imported")); got != 3 {
		t.Errorf("rows imported = %v, want 3", got)
	}
	if got := testutil.ToFloat64(b.chunkCounter); got != 1 {
		t.Errorf("chunks = %v, want 1", got)
	}
}

func TestFlushPushesToGateway(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	b, err := NewBackend("import", srv.URL)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	b.IncCounter("ingest_chunks_total", 2, nil)

	if err := b.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if gotPath != "/metrics/job/import" {
		t.Errorf("push path = %q", gotPath)
	}
}
